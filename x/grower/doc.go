/*
Package grower keeps track of tree planters and which asset each of them
maintains. A grower can be affiliated with an organization that takes a cut
of every payment released to the grower. The registry is maintained by the
configuration admin.
*/
package grower
