package ruckus

import (
	"context"
	"time"
)

// VenuesClient manages venues and the resources scoped to them.
type VenuesClient interface {
	Query(ctx context.Context, query *Query) (*QueryResult[Venue], error)
	Get(ctx context.Context, venueID string) (*Venue, error)
	Create(ctx context.Context, request *VenueCreateRequest) (*Venue, error)
	Update(ctx context.Context, venueID string, request *VenueUpdateRequest) (*Venue, error)
	Delete(ctx context.Context, venueID string) error
	APs(ctx context.Context, venueID string) ([]AccessPoint, error)
	QuerySwitches(ctx context.Context, venueID string, query *Query) (*QueryResult[Switch], error)
	QueryWLANs(ctx context.Context, venueID string, query *Query) (*QueryResult[WLAN], error)
	QueryClients(ctx context.Context, venueID string, query *Query) (*QueryResult[WirelessClient], error)
}

// AccessPointsClient manages access points. APs are addressed by venue ID and
// serial number; the tenant-wide query endpoint is the only way to locate an
// AP without knowing its venue.
type AccessPointsClient interface {
	Query(ctx context.Context, query *Query) (*QueryResult[AccessPoint], error)
	Get(ctx context.Context, serialNumber string) (*AccessPoint, error)
	Update(ctx context.Context, venueID, serialNumber string, request *APUpdateRequest) (*AccessPoint, error)
	Reboot(ctx context.Context, venueID, serialNumber string) error
	QueryClients(ctx context.Context, query *Query) (*QueryResult[WirelessClient], error)
	GetRadioSettings(ctx context.Context, venueID, serialNumber string) (RadioSettings, error)
	UpdateRadioSettings(ctx context.Context, venueID, serialNumber string, settings RadioSettings) (RadioSettings, error)
	GetStatistics(ctx context.Context, venueID, serialNumber string) (Statistics, error)
	AddToGroup(ctx context.Context, venueID, apGroupID string, serialNumbers []string) error
}

// SwitchesClient manages ICX switches, their ports, and their VLANs.
type SwitchesClient interface {
	Query(ctx context.Context, query *Query) (*QueryResult[Switch], error)
	Get(ctx context.Context, venueID, switchID string) (*Switch, error)
	Update(ctx context.Context, venueID, switchID string, updates map[string]interface{}) (*Switch, error)
	Reboot(ctx context.Context, venueID, switchID string) error
	QueryPorts(ctx context.Context, query *Query) (*QueryResult[SwitchPort], error)
	UpdatePort(ctx context.Context, venueID, switchID, portID string, updates map[string]interface{}) (*SwitchPort, error)
	GetVLANs(ctx context.Context, venueID, switchID string) ([]SwitchVLAN, error)
	CreateVLAN(ctx context.Context, venueID, switchID string, vlan *SwitchVLAN) (*SwitchVLAN, error)
	UpdateVLAN(ctx context.Context, venueID, switchID, vlanID string, updates map[string]interface{}) (*SwitchVLAN, error)
	DeleteVLAN(ctx context.Context, venueID, switchID, vlanID string) error
	GetStatistics(ctx context.Context, venueID, switchID string) (Statistics, error)
}

// WLANsClient manages Wi-Fi networks and their venue activations.
type WLANsClient interface {
	Query(ctx context.Context, query *Query) (*QueryResult[WLAN], error)
	Get(ctx context.Context, wlanID string) (*WLAN, error)
	Create(ctx context.Context, request *WLANCreateRequest) (*WLAN, error)
	Update(ctx context.Context, wlanID string, updates map[string]interface{}) (*WLAN, error)
	Delete(ctx context.Context, wlanID string) error
	QueryVenueNetworks(ctx context.Context, query *Query) (*QueryResult[WLAN], error)
	Activate(ctx context.Context, venueID, wlanID string, apGroupID string) error
	Deactivate(ctx context.Context, venueID, networkID string) error
}

// VLANsClient manages VLAN pools, pool profiles, and venue management-VLAN
// settings.
type VLANsClient interface {
	QueryPools(ctx context.Context, query *Query) (*QueryResult[VLANPool], error)
	GetPool(ctx context.Context, poolID string) (*VLANPool, error)
	CreatePool(ctx context.Context, pool *VLANPool) (*VLANPool, error)
	UpdatePool(ctx context.Context, poolID string, updates map[string]interface{}) (*VLANPool, error)
	DeletePool(ctx context.Context, poolID string) error
	QueryProfiles(ctx context.Context, query *Query) (*QueryResult[VLANPoolProfile], error)
	GetProfile(ctx context.Context, profileID string) (*VLANPoolProfile, error)
	CreateProfile(ctx context.Context, profile *VLANPoolProfile) (*VLANPoolProfile, error)
	UpdateProfile(ctx context.Context, profileID string, updates map[string]interface{}) (*VLANPoolProfile, error)
	DeleteProfile(ctx context.Context, profileID string) error
	GetManagementVLAN(ctx context.Context, venueID string) (*ManagementVLANSettings, error)
	UpdateManagementVLAN(ctx context.Context, venueID string, settings *ManagementVLANSettings) (*ManagementVLANSettings, error)
}

// DPSKClient manages dynamic pre-shared key services, their passphrases, and
// passphrase device bindings.
type DPSKClient interface {
	QueryServices(ctx context.Context, query *Query) (*QueryResult[DPSKService], error)
	GetService(ctx context.Context, serviceID string) (*DPSKService, error)
	CreateService(ctx context.Context, request *DPSKServiceCreateRequest) (*DPSKService, error)
	UpdateService(ctx context.Context, serviceID string, updates map[string]interface{}) (*DPSKService, error)
	DeleteService(ctx context.Context, serviceID string) error

	QueryPassphrases(ctx context.Context, serviceID string, query *Query) (*QueryResult[Passphrase], error)
	GetPassphrase(ctx context.Context, serviceID, passphraseID string) (*Passphrase, error)
	CreatePassphrases(ctx context.Context, serviceID string, passphrases []Passphrase) ([]Passphrase, error)
	UpdatePassphrase(ctx context.Context, serviceID, passphraseID string, updates map[string]interface{}) (*Passphrase, error)
	DeletePassphrases(ctx context.Context, serviceID string, passphraseIDs []string) error

	ListDevices(ctx context.Context, serviceID, passphraseID string) ([]PassphraseDevice, error)
	AddDevices(ctx context.Context, serviceID, passphraseID string, devices []PassphraseDevice) error
	RemoveDevices(ctx context.Context, serviceID, passphraseID string, macs []string) error

	ImportPassphrasesCSV(ctx context.Context, serviceID string, csv []byte) error
	ExportPassphrasesCSV(ctx context.Context, serviceID string, query *Query) ([]byte, error)
	AssociateWLAN(ctx context.Context, wlanID, serviceID string) error
}

// IdentitiesClient manages identities within identity groups.
type IdentitiesClient interface {
	List(ctx context.Context) ([]Identity, error)
	Query(ctx context.Context, query *Query) (*QueryResult[Identity], error)
	Get(ctx context.Context, groupID, identityID string) (*Identity, error)
	Update(ctx context.Context, groupID, identityID string, updates map[string]interface{}) (*Identity, error)
	Delete(ctx context.Context, groupID, identityID string) error
	AddDevices(ctx context.Context, groupID, identityID string, devices []IdentityDevice) error
	RemoveDevice(ctx context.Context, groupID, identityID, macAddress string) error
	ExportCSV(ctx context.Context, query *Query) ([]byte, error)
}

// IdentityGroupsClient manages identity groups and their service linkages.
type IdentityGroupsClient interface {
	List(ctx context.Context) ([]IdentityGroup, error)
	Query(ctx context.Context, query *Query) (*QueryResult[IdentityGroup], error)
	Get(ctx context.Context, groupID string) (*IdentityGroup, error)
	Create(ctx context.Context, group *IdentityGroup) (*IdentityGroup, error)
	Update(ctx context.Context, groupID string, updates map[string]interface{}) (*IdentityGroup, error)
	Delete(ctx context.Context, groupID string) error
	LinkDPSKPool(ctx context.Context, groupID, dpskPoolID string) error
	LinkPolicySet(ctx context.Context, groupID, policySetID string) error
	AddIdentity(ctx context.Context, groupID string, identity *Identity) (*Identity, error)
}

// Client is the full RUCKUS One API surface.
type Client interface {
	Venues() VenuesClient
	AccessPoints() AccessPointsClient
	Switches() SwitchesClient
	WLANs() WLANsClient
	VLANs() VLANsClient
	DPSK() DPSKClient
	Identities() IdentitiesClient
	IdentityGroups() IdentityGroupsClient

	// Token returns the current bearer token, acquiring one if needed.
	Token(ctx context.Context) (string, error)
	// BaseURL returns the resolved regional API base URL.
	BaseURL() string
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a ruckus.Client.
//
// Authentication: provide ClientID/ClientSecret/TenantID for the OAuth2
// client_credentials exchange against the regional token endpoint, or an
// AccessToken to use a pre-acquired bearer token directly. The token
// manager caches tokens and refreshes them 5 minutes before their declared
// expiry, so callers never see a token that would expire mid-request.
//
// Region selects the API cluster ("na", "eu", "asia"). Unrecognized codes
// resolve to the "na" cluster; a configured Logger receives a warning when
// that fallback happens.
type Config struct {
	// OAuth2 client credentials.
	ClientID     string
	ClientSecret string
	// TenantID is the RUCKUS One tenant the credentials belong to.
	TenantID string
	// Region is the API region code. Empty means "na".
	Region string

	// AccessToken, if set, is used directly as a static bearer token and
	// the client-credentials exchange is skipped.
	AccessToken string

	// HTTPTimeout bounds each HTTP exchange. Zero means the default.
	HTTPTimeout time.Duration
	// RetryMax enables transport-level retries when > 0. The default is no
	// retries; failures surface immediately to the caller.
	RetryMax     int
	RetryWaitMin time.Duration
	RetryWaitMax time.Duration

	// Debug enables request/response logging through Logger.
	Debug bool
	// Logger is an optional structured logger.
	Logger Logger
	// Interceptors, if set, is executed around every request.
	Interceptors *InterceptorChain
	// UserAgent overrides the default User-Agent header.
	UserAgent string
}
