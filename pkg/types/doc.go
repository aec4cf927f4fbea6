// Package types defines the Record entity, the Key and Value query types,
// the RecordStore interface, configuration, and standard errors for the
// rolodex record tracker.
package types
