// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Booking is the predicate function for booking builders.
type Booking func(*sql.Selector)

// CarePackage is the predicate function for carepackage builders.
type CarePackage func(*sql.Selector)

// ContentPage is the predicate function for contentpage builders.
type ContentPage func(*sql.Selector)

// Doctor is the predicate function for doctor builders.
type Doctor func(*sql.Selector)

// Hospital is the predicate function for hospital builders.
type Hospital func(*sql.Selector)

// Media is the predicate function for media builders.
type Media func(*sql.Selector)

// Translator is the predicate function for translator builders.
type Translator func(*sql.Selector)

// Treatment is the predicate function for treatment builders.
type Treatment func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)

// UserSession is the predicate function for usersession builders.
type UserSession func(*sql.Selector)
