package constants

// Pub/Sub providers.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Environments.
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Object key namespaces in the object store.
const (
	AddressImagePrefix = "addresses"
	AvatarPrefix       = "avatars"
)

// Map render targets.
const (
	MapTargetWeb    = "web"
	MapTargetNative = "native"
)
