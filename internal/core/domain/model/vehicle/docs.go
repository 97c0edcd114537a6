// Package vehicle contains the Vehicle aggregate, identified by its
// externally supplied chassis number and always owned by one customer.
package vehicle
