/*
Package auction implements timed english auctions for assets. An auction is
created by the administrator for an available asset and accepts bids between
its start and end time. Each bid must top the previous one by at least the
configured increment and is escrowed on an auction owned account, refunding
the outbid participant in the same block. Bids placed shortly before the
deadline extend it by the anti snipe window. Once expired, anyone can close
the auction. The winner receives the asset ownership and the proceeds are
handed over to the treasury for distribution. An auction without bids
releases the asset back to the pool.
*/
package auction
