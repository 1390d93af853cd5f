// Package config loads application settings from a YAML file, environment
// variables and command-line flags, in increasing order of precedence.
//
// Example file:
//
//	appId: "10001"
//	privateKeyFile: /etc/shucang/app-private.pem
//	peerPublicKeyFile: /etc/shucang/platform-public.pem
//	env: production
//	logLevel: info
//	logFormat: json
package config
