// Package divdex provides an embedded Go client for the divdex
// diversity-bounded search index backed by Redis.
//
// Queries traverse one attribute in dictionary order and admit documents
// through a diversity filter that caps how many hits any single group may
// contribute.
//
// # Low-level API — explicit control
//
//	client, _ := divdex.New(ctx, divdex.WithRedis("localhost:6379", ""))
//	client.Documents().UpsertBatch(ctx, offers)
//	res, _ := client.Query().
//	    Attribute("price").
//	    DiverseBy("seller").MaxPerGroup(1).
//	    Limit(10).
//	    Do(ctx)
//
// # High-level API — schema-first with Go generics
//
//	type Offer struct {
//	    ID     string `divdex:"id"`
//	    Price  int    `divdex:"price"`
//	    Seller string `divdex:"seller"`
//	}
//
//	idx, _ := divdex.NewIndex[Offer](client)
//	_ = idx.UpsertBatch(ctx, offers)
//	hits, _ := idx.Search().OrderBy("price").DiverseBy("seller").Limit(10).Do(ctx)
package divdex
