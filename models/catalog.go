package models

// CatalogLesson is one bundled lesson with its question set, shipped with
// the binary so topics render without any authored content.
type CatalogLesson struct {
	Title     string         `json:"title"`
	Summary   string         `json:"summary"`
	Content   string         `json:"content"`
	Questions []QuizQuestion `json:"questions"`
}

// CatalogTables holds the bundled content, keyed by topic id then by BCP 47
// language tag. English ("en") must exist for every topic — it is the
// fallback when a requested language is absent.
var CatalogTables = map[string]map[string]CatalogLesson{
	"crypto-basics": {
		"en": {
			Title:   "What Is a Wallet?",
			Summary: "Keys, addresses, and why you never share your seed phrase.",
			Content: "A wallet holds the key pair that controls your on-chain identity. " +
				"The address is public; the private key signs transactions and must never leave your device.",
			Questions: []QuizQuestion{
				{
					Question:     "What does a wallet address identify?",
					Options:      []string{"Your private key", "Your on-chain identity", "Your seed phrase", "Your exchange account"},
					CorrectIndex: 1,
				},
				{
					Question:     "Which of these should never be shared?",
					Options:      []string{"Your address", "Your transaction history", "Your seed phrase", "Your ENS name"},
					CorrectIndex: 2,
					Explanation:  "Anyone holding the seed phrase controls the wallet.",
				},
			},
		},
		"es": {
			Title:   "¿Qué es una billetera?",
			Summary: "Claves, direcciones y por qué nunca compartes tu frase semilla.",
			Content: "Una billetera guarda el par de claves que controla tu identidad en la cadena. " +
				"La dirección es pública; la clave privada firma transacciones y nunca debe salir de tu dispositivo.",
			Questions: []QuizQuestion{
				{
					Question:     "¿Qué identifica una dirección de billetera?",
					Options:      []string{"Tu clave privada", "Tu identidad en la cadena", "Tu frase semilla", "Tu cuenta de exchange"},
					CorrectIndex: 1,
				},
			},
		},
	},
	"culture": {
		"en": {
			Title:   "Community Norms",
			Summary: "How open communities share, credit, and moderate content.",
			Content: "Public content is visible to everyone in the feed. Personal content stays on your profile. " +
				"Credit authors when you remix their lessons.",
			Questions: []QuizQuestion{
				{
					Question:     "Where does public content appear?",
					Options:      []string{"Only on your profile", "In the community feed", "Nowhere", "Only in search"},
					CorrectIndex: 1,
				},
			},
		},
		"fr": {
			Title:   "Normes communautaires",
			Summary: "Comment les communautés ouvertes partagent et modèrent le contenu.",
			Content: "Le contenu public est visible par tous dans le fil. Le contenu personnel reste sur votre profil.",
			Questions: []QuizQuestion{
				{
					Question:     "Où apparaît le contenu public ?",
					Options:      []string{"Uniquement sur votre profil", "Dans le fil communautaire", "Nulle part", "Uniquement dans la recherche"},
					CorrectIndex: 1,
				},
			},
		},
	},
}
