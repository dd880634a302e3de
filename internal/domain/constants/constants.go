// Package constants holds string identifiers shared across layers.
package constants

// Deployment environments.
const (
	EnvDevelop    = "develop"
	EnvStaging    = "staging"
	EnvProduction = "production"
)

// Pub/Sub providers used for queue kicks.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Push gateway providers.
const (
	PushProviderExpo     = "expo"
	PushProviderFirebase = "firebase"
	PushProviderAuto     = "auto"
)

// Invocation headers accepted by the function endpoints.
const (
	HeaderScheduled     = "x-scheduled"
	HeaderWorkerSecret  = "x-worker-secret"
	HeaderCronKey       = "x-cron-key"
	HeaderNotifySecret  = "x-notify-secret"
	HeaderWebhookSecret = "x-webhook-secret"
)

// Scheduled job names, used as lock keys and metric labels.
const (
	JobPushDrain           = "push-drain"
	JobReclaimStale        = "reclaim-stale"
	JobNotifyBilling       = "notify-billing"
	JobChargeSubscriptions = "charge-subscriptions"
)
