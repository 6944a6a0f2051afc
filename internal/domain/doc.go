// Package domain contains the core business entities, value objects, and
// domain logic of the application: users, the contacts they own, and the
// sparse patch applied to a contact on update. It is independent of any
// specific infrastructure or delivery mechanism.
package domain
