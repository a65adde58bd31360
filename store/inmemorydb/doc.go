/*
Package inmemorydb provides an implementation of github.com/pairupbot/pairup/store's Storer interface
keeping all records in memory. It can either run standalone (useful in tests
and local runs) or wrap a persistent Storer with write-through puts and
deletes.
*/
package inmemorydb // import "github.com/pairupbot/pairup/store/inmemorydb"
