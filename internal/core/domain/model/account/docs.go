// Package account contains the Account aggregate: a role-tagged login record
// shared by customers and employees, with customer-specific extension fields
// selected by the role tag.
package account
