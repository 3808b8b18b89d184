package falagard

// ManagerOption configures a Manager during creation.
//
// Example:
//
//	images := falagard.NewImageManager()
//	m := falagard.NewManager(
//	    falagard.WithImages(images),
//	    falagard.WithCacheCapacity(128),
//	)
type ManagerOption func(*managerOptions)

// managerOptions holds optional configuration for Manager creation.
type managerOptions struct {
	images        *ImageManager
	anims         AnimationManager
	cacheCapacity int
}

// defaultManagerOptions returns the default manager options.
func defaultManagerOptions() managerOptions {
	return managerOptions{cacheCapacity: 64}
}

// WithImages sets the image registry shared with the looks. A new, empty
// registry is created when none is given.
func WithImages(images *ImageManager) ManagerOption {
	return func(o *managerOptions) {
		o.images = images
	}
}

// WithAnimationManager sets where looks instantiate their animations.
func WithAnimationManager(m AnimationManager) ManagerOption {
	return func(o *managerOptions) {
		o.anims = m
	}
}

// WithCacheCapacity sets how many flattened looks are kept.
// Zero keeps every look.
func WithCacheCapacity(n int) ManagerOption {
	return func(o *managerOptions) {
		if n >= 0 {
			o.cacheCapacity = n
		}
	}
}
