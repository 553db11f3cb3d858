package i18n

import "errors"

var (
	ErrFailedToParseYAML = errors.New("i18n: failed to parse YAML content")
	ErrFailedToParseJSON = errors.New("i18n: failed to parse JSON content")
	ErrFailedToReadFile  = errors.New("i18n: failed to read translation file")
	ErrInvalidStructure  = errors.New("i18n: invalid translation structure")
	ErrNoTranslations    = errors.New("i18n: no translations found")
)
