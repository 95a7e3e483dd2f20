// Package workers hosts the relay's background maintenance jobs.
package workers
