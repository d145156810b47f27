// Package services provides domain services that implement business logic not
// naturally owned by a single aggregate. The pricing service lives here: it
// combines parcel weight classification with route distance under process-wide
// pricing configuration fixed at startup.
package services
