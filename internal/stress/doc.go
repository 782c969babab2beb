// Package stress hammers a set.ConcurrentSet with concurrent writers and
// snapshot readers, then checks that the outcome matches some sequential
// ordering of the successful operations and that no snapshot was torn.
package stress
