// Package service contains the application use cases. It coordinates the
// domain types with the persistence interfaces in internal/store and the
// credential primitives in internal/service/auth.
//
// Services receive their dependencies through constructor injection and
// never depend on a concrete store. Expected outcomes (a duplicate email,
// a missing contact, a caller who does not own a contact) are returned as
// sentinel errors so the API layer can map them to status codes; anything
// unexpected is wrapped in a ServiceError.
package service
