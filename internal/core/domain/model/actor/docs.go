// Package actor contains the people aggregate of the tailoring domain:
// customers placing orders, tailors working them, and staff or admin users
// operating the shop.
//
// Every mutating operation of the core carries an explicit acting role and
// actor identifier instead of an ambient session, so the Role value object
// defined here appears on all write paths. The aggregate itself is
// deliberately small: the core only needs existence and role checks, while
// full people management lives outside the engine.
package actor
