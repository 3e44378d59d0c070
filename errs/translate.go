package errs

import (
	"errors"
	"sync"

	"golang.org/x/text/unicode/norm"
)

// The service is under-documented and answers with natural-language
// text rather than codes. Phrases must match verbatim; both sides are
// NFC-normalized so composed and decomposed accents compare equal.
var (
	tableMu sync.RWMutex
	table   = map[string]entry{}
)

type entry struct {
	category Category
	message  string
}

func init() {
	for _, e := range []struct {
		phrase   string
		category Category
		message  string
	}{
		{"problème avec l'url", CategoryBadRequest, "bad request: the API call URL contains no information"},
		{"Il manque des champs obligatoires dans l'url", CategoryMissingFields, "bad request: required fields are missing from the API URL"},
		{"Erreur dans le nom du fichier rom : celui-ci contient un chemin d'accés", CategoryInvalidROMPath, "invalid rom file name: it contains a file path"},
		{"Champ crc, md5 ou sha1 erroné", CategoryInvalidChecksum, "invalid checksum field: crc, md5 or sha1 is incorrectly formatted"},
		{"Problème dans le nom du fichier rom", CategoryInvalidROMName, "invalid rom file name format"},
		{"API fermé pour les non membres ou les membres inactifs", CategoryUnauthorized, "unauthorized: API access is restricted to active members"},
		{"Erreur de login : Vérifier vos identifiants développeur !", CategoryBadCredentials, "login error: check your developer credentials"},
		{"Erreur : Jeu non trouvée ! / Erreur : Rom/Iso/Dossier non trouvée !", CategoryNotFound, "not found: the requested game, rom, iso or folder could not be located"},
		{"API totalement fermé", CategoryLocked, "locked: the API is closed due to critical server issues"},
		{"Le logiciel de scrape utilisé a été blacklisté (non conforme / version obsolète)", CategoryBlacklisted, "upgrade required: the scraping software is outdated or non-compliant"},
		{"Le nombre de threads autorisé pour le membre est atteint", CategoryThreadLimit, "too many requests: the allowed thread limit for the member is reached"},
		{"Le nombre de threads par minute autorisé pour le membre est atteint", CategoryThreadRateLimit, "too many requests: the thread per minute limit for the member is reached"},
		{"The maximum threads allowed to leecher users is already used", CategoryLeecherThreadLimit, "too many requests: the maximum threads for leecher users are in use"},
		{"The maximum threads is already used", CategoryThreadLimit, "too many requests: the overall thread limit is reached"},
		{"Votre quota de scrape est dépassé pour aujourd'hui !", CategoryQuotaExceeded, "quota exceeded: the daily scrape limit is reached"},
		{"Faite du tri dans vos fichiers roms et repassez demain !", CategoryUnidentifiedROMs, "too many unidentified roms: clean up your files and try again tomorrow"},
	} {
		table[norm.NFC.String(e.phrase)] = entry{category: e.category, message: e.message}
	}
}

// Register adds or replaces a phrase in the translation table, letting
// callers classify upstream messages this package does not know yet.
func Register(phrase string, category Category, message string) error {
	if phrase == "" {
		return errors.New("phrase must not be empty")
	}
	if message == "" {
		return errors.New("message must not be empty")
	}

	tableMu.Lock()
	defer tableMu.Unlock()

	table[norm.NFC.String(phrase)] = entry{category: category, message: message}

	return nil
}

// Translate returns the category and human-readable message for a raw
// upstream phrase. Unknown phrases report CategoryUnknown and ok=false.
func Translate(phrase string) (category Category, message string, ok bool) {
	e, ok := lookup(phrase)
	if !ok {
		return CategoryUnknown, "", false
	}

	return e.category, e.message, true
}

func lookup(phrase string) (entry, bool) {
	tableMu.RLock()
	defer tableMu.RUnlock()

	e, ok := table[norm.NFC.String(phrase)]
	return e, ok
}
