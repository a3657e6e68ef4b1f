/*
Package assets implements the registry of tokenized trees. Each asset is a
single tree with an on-chain owner. Other extensions reserve an asset while it
is attached to a live auction and transfer ownership once the auction is
settled.
*/
package assets
