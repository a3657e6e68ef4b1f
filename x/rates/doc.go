/*
Package rates maintains exchange rates between tokens traded on this chain.
Rates are declared by the configuration admin and used during settlement to
convert bid token amounts into the payout token. Conversion always rounds
towards zero.
*/
package rates
