// Package service contains the application services that orchestrate
// domain entities and stores. Services enforce business rules such as task
// ownership; they never touch HTTP concerns.
package service
