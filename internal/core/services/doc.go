// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// Besides the standard library, services depend only on the JSON schema
// validator used to check model replies.
package services
