// Package config manages application configuration for the Hangar API.
//
// Configuration is loaded from environment variables with development
// defaults, then validated once at startup:
//
//	cfg, _ := config.Load()
//	if err := cfg.Validate(); err != nil { ... }
//
// # Configuration Groups
//
//   - ServerConfig: HTTP server settings (port, timeouts, CORS origins)
//   - DatabaseConfig: SurrealDB connection settings
//   - AuthConfig: OIDC identity provider settings (domain, client, JWKS)
//   - SessionConfig: browser login session lifetime
//
// # Key Environment Variables
//
//	SERVER_PORT         - HTTP server port (default: 8080)
//	DB_HOST / DB_PORT   - SurrealDB endpoint
//	DB_NAMESPACE        - SurrealDB namespace (default: hangar)
//	AUTH_DOMAIN         - identity provider tenant domain
//	AUTH_CLIENT_ID      - OAuth client ID, also the expected JWT audience
//	AUTH_CLIENT_SECRET  - OAuth client secret
//	AUTH_CALLBACK_URL   - redirect URI registered for the login flow
package config
