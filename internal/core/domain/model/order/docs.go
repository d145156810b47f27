// Package order contains the DeliveryOrder aggregate: the shipment record
// created when a user sends a parcel. The aggregate owns the order lifecycle
// (pending through delivered or cancelled), the tracking number, and the
// derived route figures - distance, duration, price, and estimated delivery -
// which are always recomputed together so they stay mutually consistent.
package order
