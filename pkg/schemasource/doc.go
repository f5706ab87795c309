// Package schemasource fetches schema documents from where they are stored
// and builds a validator registry from them.
//
// Three backends are supported: local files (a single path or a glob), an S3
// bucket prefix, and a Redis hash whose fields hold one document each.
//
//	h, err := schemasource.Open(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer h.Close()
//
//	reg, err := schemasource.Load(ctx, h)
//
// Open reads Config, which is usually populated from the environment with
// config.Load. Every backend returns documents in a stable order, so schemas
// are defined in the same order on every load.
package schemasource
