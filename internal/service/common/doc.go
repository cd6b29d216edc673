// Package common holds helpers shared by the demo and script services.
//
// Open loads configuration and assembles a home whose events go to the
// console transcript and to the zap event log.
//
//nolint:revive,nolintlint // Package name "common" is intentional for shared helpers.
package common
