// Package kernel provides the domain primitives shared by the user and order
// models. Today that is the UUID identifier value object; it rejects the nil
// UUID so that an entity can never be persisted without an identity.
package kernel
