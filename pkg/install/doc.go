// Package install materializes resolved boot file pairs into the
// destination tree.
//
// Installation is sequential and deliberately non-transactional: the
// first filesystem failure aborts the run and files copied by earlier
// pairs are left in place. Re-running with the same inputs is safe and
// produces the same destination tree.
package install
