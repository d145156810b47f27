// Package parcel contains the Parcel aggregate and the weight classification
// used by pricing. A parcel is created by its owning user, may be updated or
// deleted, and is referenced by delivery orders via its identifier.
package parcel
