package mock

// State is the fictitious Samba/ZFS configuration reported by get-state.
//
//nolint:govet // fieldalignment: field order defines the JSON layout
type State struct {
	Initialized      bool           `json:"initialized"`
	PrimaryPool      string         `json:"primary_pool"`
	SecondaryPools   []string       `json:"secondary_pools"`
	ServerName       string         `json:"server_name"`
	Workgroup        string         `json:"workgroup"`
	MacOSOptimized   bool           `json:"macos_optimized"`
	DefaultHomeQuota string         `json:"default_home_quota"`
	Users            Ordered[User]  `json:"users"`
	Groups           Ordered[Group] `json:"groups"`
	Shares           Ordered[Share] `json:"shares"`
}

// Dataset describes the ZFS dataset backing a home directory or share.
// A nil Quota means the dataset is unlimited.
type Dataset struct {
	Name  string  `json:"name"`
	Quota *string `json:"quota"`
	Pool  string  `json:"pool"`
}

// User is a Samba user with a home dataset.
//
//nolint:govet // fieldalignment: field order defines the JSON layout
type User struct {
	ShellAccess bool     `json:"shell_access"`
	Groups      []string `json:"groups"`
	Created     string   `json:"created"`
	Dataset     Dataset  `json:"dataset"`
}

// Group is a Samba group.
type Group struct {
	Description string   `json:"description"`
	Members     []string `json:"members"`
	Created     string   `json:"created"`
}

// Share is an SMB share backed by its own dataset.
type Share struct {
	Dataset   Dataset   `json:"dataset"`
	SMBConfig SMBConfig `json:"smb_config"`
	System    Ownership `json:"system"`
	Created   string    `json:"created"`
}

// SMBConfig holds the smb.conf options of a share.
//
//nolint:govet // fieldalignment: field order defines the JSON layout
type SMBConfig struct {
	Comment    string `json:"comment"`
	Browseable bool   `json:"browseable"`
	ReadOnly   bool   `json:"read_only"`
	ValidUsers string `json:"valid_users"`
}

// Ownership is the filesystem owner, group and mode of a share's mountpoint.
type Ownership struct {
	Owner       string `json:"owner"`
	Group       string `json:"group"`
	Permissions string `json:"permissions"`
}

// Pools is the fixed answer to "list pools". It is not derived from the
// state: it also names a pool the state does not use.
var Pools = []string{"tank-dev", "data-dev", "backup-dev"}

// DefaultState returns the canned configuration served to the UI.
func DefaultState() State {
	return State{
		Initialized:      true,
		PrimaryPool:      "tank-dev",
		SecondaryPools:   []string{"data-dev"},
		ServerName:       "SAMBA-SERVER-DEV",
		Workgroup:        "WORKGROUP",
		MacOSOptimized:   true,
		DefaultHomeQuota: "50G",
		Users: Ordered[User]{
			{Name: "devuser1", Value: User{
				ShellAccess: true,
				Groups:      []string{"smb_users"},
				Created:     "2025-08-01T14:00:00",
				Dataset: Dataset{
					Name:  "tank-dev/homes/devuser1",
					Quota: quota("50G"),
					Pool:  "tank-dev",
				},
			}},
			{Name: "devuser2", Value: User{
				ShellAccess: false,
				Groups:      []string{},
				Created:     "2025-08-01T14:05:00",
				Dataset: Dataset{
					Name: "tank-dev/homes/devuser2",
					Pool: "tank-dev",
				},
			}},
		},
		Groups: Ordered[Group]{
			{Name: "smb_users", Value: Group{
				Description: "Default Samba users",
				Members:     []string{"devuser1"},
				Created:     "2025-08-01T13:59:00",
			}},
			{Name: "project-alpha", Value: Group{
				Description: "Project Alpha Team",
				Members:     []string{"devuser1", "devuser2"},
				Created:     "2025-08-01T14:10:00",
			}},
		},
		Shares: Ordered[Share]{
			{Name: "public", Value: Share{
				Dataset: Dataset{
					Name:  "data-dev/shares/public",
					Quota: quota("1T"),
					Pool:  "data-dev",
				},
				SMBConfig: SMBConfig{
					Comment:    "Public Dev Share",
					Browseable: true,
					ReadOnly:   false,
					ValidUsers: "@smb_users",
				},
				System: Ownership{
					Owner:       "root",
					Group:       "smb_users",
					Permissions: "775",
				},
				Created: "2025-08-01T14:15:00",
			}},
		},
	}
}

func quota(q string) *string {
	return &q
}
