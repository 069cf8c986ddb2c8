// Package config provides configuration parsing for solvr-ui.
//
// The configuration is stored in solvr-ui.json at the project root.
// This package handles loading, saving, and validating configuration.
//
// # Configuration File Structure
//
//	{
//	  "name": "my-client",
//	  "api": {
//	    "baseUrl": "https://api.solvr.dev",
//	    "keyEnv": "SOLVR_API_KEY",
//	    "timeout": "30s",
//	    "maxRetries": 3
//	  },
//	  "log": {
//	    "level": "info",
//	    "format": "text"
//	  },
//	  "metrics": {
//	    "enabled": true,
//	    "namespace": "solvr_ui"
//	  }
//	}
//
// The API key is resolved through an environment variable indirection:
// the file names the variable (keyEnv), never the secret itself. A
// literal key field exists for local development only.
package config
