// Package vault is the record store of the credential vault: the persisted
// data model, the four core operations and the lock/unlock state machine.
//
// # States
//
//	Uninitialized  no credential record persisted
//	Locked         credential exists, no key in memory
//	Unlocked       a *Session holds the derived key
//
// Register moves Uninitialized to Unlocked, Login moves Locked to Unlocked
// and Logout (Session.Lock) moves back to Locked. No transition decrypts or
// re-encrypts the stored entries; they are decrypted one at a time on
// request while a session is unlocked.
//
// # Core operations
//
//   - NewCredential               register a user, derive the key
//   - (*Credential).Authenticate  verify a login, derive the key
//   - EncryptSecret / SealEntry   encrypt one secret under the key
//   - DecryptSecret               decrypt one entry
//
// Keeper combines them with a Repository, which is responsible for reading
// and writing the Document.
package vault
