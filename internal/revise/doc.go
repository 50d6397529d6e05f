// Package revise coordinates document revision: the deterministic rewrite
// passes, the optional assistive pass, and the reconciliation of attempted
// versus applied fixes into a revision result.
package revise
