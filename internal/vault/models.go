package vault

import "slices"

// Credential is the single user record. Only Username is human-readable;
// the other fields are base64 text.
type Credential struct {
	Username  string `json:"username"`
	LoginHash string `json:"login_hash"`
	LoginSalt string `json:"login_salt"`
	KeySalt   string `json:"key_salt"`
}

// Entry is one stored secret. Name and Account are plaintext metadata;
// Ciphertext and Nonce are base64 text.
type Entry struct {
	Name       string `json:"name"`
	Account    string `json:"account"`
	Ciphertext string `json:"ciphertext"`
	Nonce      string `json:"nonce"`
}

// Document is the persisted record set.
type Document struct {
	User     *Credential `json:"user"`
	Secrets  []Entry     `json:"secrets"`
	DarkMode *bool       `json:"dark_mode"`
}

// NewDocument returns the empty vault used on first run and whenever the
// persisted data cannot be read.
func NewDocument() *Document {
	return &Document{Secrets: []Entry{}}
}

// Normalize replaces a nil entry list with an empty one so the document
// always serializes "secrets" as an array.
func (d *Document) Normalize() *Document {
	if d.Secrets == nil {
		d.Secrets = []Entry{}
	}
	return d
}

// Clone returns a deep copy.
func (d *Document) Clone() *Document {
	c := &Document{Secrets: slices.Clone(d.Secrets)}
	if d.User != nil {
		u := *d.User
		c.User = &u
	}
	if d.DarkMode != nil {
		v := *d.DarkMode
		c.DarkMode = &v
	}
	return c.Normalize()
}

// DarkModeEnabled reports the display preference; unset means dark.
func (d *Document) DarkModeEnabled() bool {
	if d.DarkMode == nil {
		return true
	}
	return *d.DarkMode
}
