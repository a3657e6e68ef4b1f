/*
Package vesting releases grower payments over time. The grower share of each
settled sale is allocated to a per asset vesting record. An off-chain oracle
reports vesting progress through checkpoints and the released funds move to
grower owned accounts, minus the cut of the grower organization. Released
funds can be withdrawn by the grower at any moment. Checkpoints are
idempotent and the released total never exceeds the allocation.
*/
package vesting
