/*
Package errors provides semantic error types for the component store.

Every failure scenario has a sentinel error and a typed error whose Is method
matches that sentinel, so callers can use the standard errors.Is function or
the provided helper functions.

Component errors:

	var (
	    ErrPropertyResolution     = errors.New("property resolution failed")
	    ErrComponentInstantiation = errors.New("component instantiation failed")
	    ErrUnknownProperty        = errors.New("unknown property")
	    ErrNotComponent           = errors.New("type is not a component")
	)

Storage and module errors:

	var (
	    ErrNotFound        = errors.New("not found")
	    ErrAlreadyExists   = errors.New("already exists")
	    ErrInvalidInput    = errors.New("invalid input")
	    ErrConditionFailed = errors.New("condition check failed")
	    ErrNoIndexMap      = errors.New("no index map found for type")
	    ErrInvalidModule   = errors.New("invalid module")
	)

Usage:

	ct, err := manager.Type(reflect.TypeFor[Health]())
	if err != nil {
	    if errors.IsPropertyResolution(err) {
	        // a getter/setter pair disagrees; the message names both types
	    }
	    return err
	}

Build errors are never cached by the manager, so a later call may succeed once
the offending type has been corrected and reloaded.
*/
package errors
