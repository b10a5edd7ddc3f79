package domain

const (
	// ConfigFileName is the name of the optional configuration file.
	ConfigFileName = "iroot.yaml"

	// DefaultIRootDB is the default candidate store file.
	DefaultIRootDB = "iroot.db"

	// DefaultMemoDB is the default memoization ledger file.
	DefaultMemoDB = "memo.db"

	// DefaultSharedInstDB is the default shared instruction registry file.
	DefaultSharedInstDB = "sinst.db"

	// StoreFormatVersion is written into every store file.
	StoreFormatVersion = 1

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)
