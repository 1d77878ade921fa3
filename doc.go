// Package algolia is a client for the Algolia hosted search API: index
// management, search, object CRUD, batch mutation, and settings over
// HTTPS/JSON.
//
// The heavy lifting lives in pkg/transport (host failover, bounded retry,
// timeout scaling) and pkg/credentials (key resolution); this package is the
// thin, uniform surface that turns operations into transport requests and
// shapes their responses.
//
// # Getting started
//
//	client := algolia.New(credentials.FromEnv())
//	index := client.Index("movies")
//
//	res, err := index.SaveObject(ctx, map[string]any{
//	    "objectID": "tt0468569",
//	    "title":    "The Dark Knight",
//	})
//	// Block until the write is durable.
//	res, err = client.Wait(ctx, res, err)
//
//	hits, err := index.Search(ctx, "dark knight", algolia.Params{"hitsPerPage": 5})
//
// Every write operation returns a body carrying "indexName" and "taskID", so
// any write result can be piped directly into Wait. Reads hit the DSN
// replica, writes the primary; both fail over across the cluster members
// transparently.
//
// Errors are data: compare with errors.Is/As against the sentinels in this
// package, pkg/transport, and pkg/credentials.
package algolia
