/*
Package treasury splits tree sale revenue between revenue categories and
keeps the collected funds until withdrawn.

Revenue of every sale is divided according to a distribution model, a list of
basis point shares that must add up to the whole. Models are bound to assets
through ID range assignments, a later assignment overriding earlier ones for
the assets it covers. Shares of most categories accrue on per category fund
accounts in the sale token and can be withdrawn by configured beneficiaries.
The grower and the referrer shares are instead converted into the payout
token, the grower part vesting over time and the referrer part claimable by
the referrer at any moment.
*/
package treasury
