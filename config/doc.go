/*
Package config loads the component store's settings from the environment.

Load reads optional .env files first and then the process environment, with
variables already set taking precedence:

	COMPONENTSTORE_LOG_LEVEL      debug, info, warn or error (default info)
	COMPONENTSTORE_LOG_FORMAT     text or json (default text)
	COMPONENTSTORE_FACTORY        reflect or generated (default reflect)
	COMPONENTSTORE_MODULES_PATH   directory scanned for module.yaml manifests
	AWS_ACCESS_KEY, AWS_SECRET_KEY, AWS_REGION, AWS_DDB_TABLE

Invalid values are reported as ValidationErrors.
*/
package config
