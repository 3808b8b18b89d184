// Package cache provides a small generic LRU cache.
//
// The look manager keeps flattened looks in it so that resolving a look for
// each new widget does not re-walk the inheritance chain:
//
//	c := cache.New[string, *falagard.ResolvedLook](64)
//	if r, ok := c.Get("Button"); ok {
//		return r, nil
//	}
//	c.Set("Button", flattened)
//
// Cache is safe for concurrent use and must not be copied after creation.
package cache
