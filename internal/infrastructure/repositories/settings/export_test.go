package settings

// NewFileSettingsRepositoryIn creates a repository rooted at home instead of the user's home directory.
func NewFileSettingsRepositoryIn(home string) *FileSettingsRepository {
	return &FileSettingsRepository{homeDir: func() (string, error) { return home, nil }}
}
