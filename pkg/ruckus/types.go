package ruckus

// QueryResult is the envelope returned by the RUCKUS One query endpoints
// (POST {resource}/query).
type QueryResult[T any] struct {
	Data       []T `json:"data"`
	TotalCount int `json:"totalCount,omitempty"`
	TotalItems int `json:"totalItems,omitempty"`
	Page       int `json:"page,omitempty"`
	PageSize   int `json:"pageSize,omitempty"`
}

// Total returns whichever total the server reported; some endpoints use
// totalCount and others totalItems.
func (r *QueryResult[T]) Total() int {
	if r.TotalCount > 0 {
		return r.TotalCount
	}

	return r.TotalItems
}

// Address is a venue street address.
type Address struct {
	AddressLine     string `json:"addressLine,omitempty"`
	City            string `json:"city,omitempty"`
	StateOrProvince string `json:"stateOrProvince,omitempty"`
	Country         string `json:"country,omitempty"`
	PostalCode      string `json:"postalCode,omitempty"`
	Latitude        string `json:"latitude,omitempty"`
	Longitude       string `json:"longitude,omitempty"`
}

// Venue represents a RUCKUS One venue.
type Venue struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Description     string   `json:"description,omitempty"`
	AddressLine     string   `json:"addressLine,omitempty"`
	City            string   `json:"city,omitempty"`
	StateOrProvince string   `json:"stateOrProvince,omitempty"`
	Country         string   `json:"country,omitempty"`
	CountryCode     string   `json:"countryCode,omitempty"`
	PostalCode      string   `json:"postalCode,omitempty"`
	Timezone        string   `json:"timezone,omitempty"`
	Status          string   `json:"status,omitempty"`
	Address         *Address `json:"address,omitempty"`
}

// VenueCreateRequest is the payload for creating a venue.
type VenueCreateRequest struct {
	Name        string  `json:"name"`
	Address     Address `json:"address"`
	Description string  `json:"description,omitempty"`
	Timezone    string  `json:"timezone,omitempty"`
}

// VenueUpdateRequest is the payload for updating a venue; zero-valued fields
// are omitted from the request body.
type VenueUpdateRequest struct {
	Name        string   `json:"name,omitempty"`
	Address     *Address `json:"address,omitempty"`
	Description string   `json:"description,omitempty"`
	Timezone    string   `json:"timezone,omitempty"`
}

// AccessPoint represents a Wi-Fi access point.
type AccessPoint struct {
	SerialNumber    string `json:"serialNumber"`
	Name            string `json:"name,omitempty"`
	Model           string `json:"model,omitempty"`
	Status          string `json:"status,omitempty"`
	MACAddress      string `json:"macAddress,omitempty"`
	IPAddress       string `json:"ipAddress,omitempty"`
	FirmwareVersion string `json:"firmwareVersion,omitempty"`
	VenueID         string `json:"venueId,omitempty"`
	APGroupID       string `json:"apGroupId,omitempty"`
	ClientCount     int    `json:"clientCount,omitempty"`
}

// APUpdateRequest is the payload for updating an access point.
type APUpdateRequest struct {
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	APGroupID   string `json:"apGroupId,omitempty"`
}

// RadioSettings holds per-AP radio configuration. The cloud treats this as a
// free-form document, so the settings are carried as a map.
type RadioSettings map[string]interface{}

// WirelessClient represents a client associated to the Wi-Fi network.
type WirelessClient struct {
	MACAddress   string `json:"macAddress"`
	IPAddress    string `json:"ipAddress,omitempty"`
	Hostname     string `json:"hostname,omitempty"`
	Username     string `json:"username,omitempty"`
	VenueID      string `json:"venueId,omitempty"`
	SerialNumber string `json:"apSerialNumber,omitempty"`
	SSID         string `json:"ssid,omitempty"`
	VLAN         int    `json:"vlan,omitempty"`
}

// Switch represents an ICX switch.
type Switch struct {
	ID              string `json:"id"`
	Name            string `json:"name,omitempty"`
	Model           string `json:"model,omitempty"`
	SerialNumber    string `json:"serialNumber,omitempty"`
	Status          string `json:"status,omitempty"`
	IP              string `json:"ip,omitempty"`
	FirmwareVersion string `json:"firmwareVersion,omitempty"`
	VenueID         string `json:"venueId,omitempty"`
}

// SwitchPort represents a single switch port.
type SwitchPort struct {
	ID           string `json:"id,omitempty"`
	PortID       string `json:"portId,omitempty"`
	Name         string `json:"name,omitempty"`
	Status       string `json:"status,omitempty"`
	SwitchID     string `json:"switchId,omitempty"`
	VenueID      string `json:"venueId,omitempty"`
	UntaggedVLAN int    `json:"untaggedVlan,omitempty"`
	TaggedVLANs  []int  `json:"taggedVlans,omitempty"`
	PoEEnabled   bool   `json:"poeEnabled,omitempty"`
}

// SwitchVLAN represents a VLAN configured on a switch.
type SwitchVLAN struct {
	ID          string `json:"id,omitempty"`
	VLANID      int    `json:"vlanId"`
	Name        string `json:"vlanName,omitempty"`
	Description string `json:"description,omitempty"`
}

// VenueAPGroup ties a Wi-Fi network to a venue (optionally restricted to an
// AP group within it).
type VenueAPGroup struct {
	VenueID   string `json:"venueId"`
	APGroupID string `json:"apGroupId,omitempty"`
	AllAPs    bool   `json:"isAllApGroups,omitempty"`
}

// WLAN represents a Wi-Fi network.
type WLAN struct {
	ID               string         `json:"id"`
	Name             string         `json:"name"`
	SSID             string         `json:"ssid,omitempty"`
	Description      string         `json:"description,omitempty"`
	SecurityProtocol string         `json:"securityProtocol,omitempty"`
	VLAN             int            `json:"vlan,omitempty"`
	HiddenSSID       bool           `json:"hiddenSsid,omitempty"`
	Status           string         `json:"status,omitempty"`
	ClientCount      int            `json:"clientCount,omitempty"`
	VenueAPGroups    []VenueAPGroup `json:"venueApGroups,omitempty"`
}

// WLANCreateRequest is the payload for creating a Wi-Fi network.
type WLANCreateRequest struct {
	Name             string                 `json:"name"`
	SSID             string                 `json:"ssid,omitempty"`
	Description      string                 `json:"description,omitempty"`
	SecurityProtocol string                 `json:"securityProtocol,omitempty"`
	Passphrase       string                 `json:"passphrase,omitempty"`
	VLAN             int                    `json:"vlan,omitempty"`
	HiddenSSID       bool                   `json:"hiddenSsid,omitempty"`
	WLANSettings     map[string]interface{} `json:"wlan,omitempty"`
}

// VLANPoolVLAN is a single VLAN entry inside a pool.
type VLANPoolVLAN struct {
	VLANID int    `json:"vlanId"`
	Name   string `json:"name,omitempty"`
}

// VLANPool represents a pool of VLANs.
type VLANPool struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	VLANs       []VLANPoolVLAN `json:"vlans,omitempty"`
}

// VLANPoolProfile associates a VLAN pool with venues/networks.
type VLANPoolProfile struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	VLANPoolID  string `json:"vlanPoolId,omitempty"`
}

// ManagementVLANSettings is the AP management traffic VLAN configuration for
// a venue.
type ManagementVLANSettings struct {
	VLANID  int  `json:"vlanId,omitempty"`
	Enabled bool `json:"enabled,omitempty"`
}

// DPSKService represents a dynamic pre-shared key service (pool).
type DPSKService struct {
	ID                   string   `json:"id"`
	Name                 string   `json:"name"`
	Description          string   `json:"description,omitempty"`
	PassphraseFormat     string   `json:"passphraseFormat,omitempty"`
	PassphraseLength     int      `json:"passphraseLength,omitempty"`
	ExpirationType       string   `json:"expirationType,omitempty"`
	DeviceCountLimit     int      `json:"deviceCountLimit,omitempty"`
	PassphraseCount      int      `json:"passphraseCount,omitempty"`
	AssociatedNetworkIDs []string `json:"associatedNetworkIds,omitempty"`
}

// DPSKServiceCreateRequest is the payload for creating a DPSK service.
type DPSKServiceCreateRequest struct {
	Name             string `json:"name"`
	Description      string `json:"description,omitempty"`
	PassphraseFormat string `json:"passphraseFormat,omitempty"`
	PassphraseLength int    `json:"passphraseLength,omitempty"`
	ExpirationType   string `json:"expirationType,omitempty"`
	DeviceCountLimit int    `json:"deviceCountLimit,omitempty"`
}

// Passphrase represents a DPSK passphrase.
type Passphrase struct {
	ID              string `json:"id,omitempty"`
	Username        string `json:"username,omitempty"`
	Passphrase      string `json:"passphrase,omitempty"`
	Email           string `json:"email,omitempty"`
	VLANID          int    `json:"vlanId,omitempty"`
	ExpirationDate  string `json:"expirationDate,omitempty"`
	NumberOfDevices int    `json:"numberOfDevices,omitempty"`
}

// PassphraseDevice is a device bound to a passphrase by MAC address.
type PassphraseDevice struct {
	MACAddress  string `json:"mac"`
	Description string `json:"description,omitempty"`
}

// Identity represents a user identity.
type Identity struct {
	ID          string `json:"id"`
	Name        string `json:"name,omitempty"`
	Email       string `json:"email,omitempty"`
	Phone       string `json:"phoneNumber,omitempty"`
	GroupID     string `json:"identityGroupId,omitempty"`
	DeviceCount int    `json:"deviceCount,omitempty"`
	Status      string `json:"status,omitempty"`
}

// IdentityDevice is a device registered to an identity.
type IdentityDevice struct {
	MACAddress  string `json:"macAddress"`
	Description string `json:"description,omitempty"`
}

// IdentityGroup represents a group of identities.
type IdentityGroup struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description,omitempty"`
	DPSKPoolID    string `json:"dpskPoolId,omitempty"`
	PolicySetID   string `json:"policySetId,omitempty"`
	IdentityCount int    `json:"identityCount,omitempty"`
}

// Statistics is a free-form statistics document; the cloud returns different
// shapes per device family, so the payload is carried as a map.
type Statistics map[string]interface{}
