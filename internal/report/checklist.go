package report

import (
	"fmt"

	"github.com/venatus57/autoanalyseur/internal/model"
)

// Item importance levels.
const (
	ImportanceCritical = "critique"
	ImportanceHigh     = "haute"
	ImportanceMedium   = "moyenne"
	ImportanceLow      = "faible"
	ImportanceInfo     = "info"
)

// ChecklistItem is one visual check to perform on the listing photos.
type ChecklistItem struct {
	Question   string `json:"question"`
	Hint       string `json:"hint"`
	Importance string `json:"importance"`
}

// ChecklistSection groups checks by vehicle area.
type ChecklistSection struct {
	Title string          `json:"title"`
	Icon  string          `json:"icon"`
	Items []ChecklistItem `json:"items"`
}

// ChecklistAdvice is a general tip displayed after the sections.
type ChecklistAdvice struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Checklist is the guided photo inspection. There is no automatic image
// analysis; the buyer walks through it by hand.
type Checklist struct {
	Sections []ChecklistSection `json:"sections"`
	Advice   []ChecklistAdvice  `json:"advice"`
}

// ChecklistMod is the slice of a detected modification the checklist
// builder needs.
type ChecklistMod struct {
	ID       string
	Name     string
	Category model.ModCategory
}

// BuildChecklist assembles the photo checklist, extending the engine and
// chassis sections and adding a dedicated section when modifications
// were detected.
func BuildChecklist(mods []ChecklistMod) Checklist {
	sections := []ChecklistSection{
		generalSection(),
		bodySection(),
		interiorSection(),
		engineSection(mods),
		runningGearSection(mods),
	}
	if len(mods) > 0 {
		sections = append(sections, modificationSection(mods))
	}
	return Checklist{Sections: sections, Advice: generalAdvice()}
}

func generalSection() ChecklistSection {
	return ChecklistSection{
		Title: "Vérifications générales des photos",
		Icon:  CameraIcon,
		Items: []ChecklistItem{
			{"Le nombre de photos est-il suffisant ?", "Méfiez-vous des annonces avec moins de 5 photos", ImportanceHigh},
			{"Les photos sont-elles de bonne qualité ?", "Photos floues ou sombres peuvent masquer des défauts", ImportanceMedium},
			{"Le véhicule est-il photographié sous tous les angles ?", "Avant, arrière, côtés, intérieur, moteur", ImportanceHigh},
			{"Les photos semblent-elles récentes ?", "Vérifiez la météo, végétation, arrière-plan", ImportanceMedium},
			{"La plaque d'immatriculation est-elle visible ou floutée ?", "Une plaque visible permet de vérifier l'historique (SIV)", ImportanceInfo},
			{"Le compteur kilométrique est-il visible sur une photo ?", "Permet de vérifier le kilométrage annoncé", ImportanceHigh},
		},
	}
}

func bodySection() ChecklistSection {
	return ChecklistSection{
		Title: "État de la carrosserie",
		Icon:  CarIcon,
		Items: []ChecklistItem{
			{"Y a-t-il des différences de teinte entre les éléments ?", "Signe de repeinture/réparation après accident", ImportanceHigh},
			{"Les joints de porte et de coffre sont-ils alignés ?", "Décalages = réparation ou accident", ImportanceHigh},
			{"Voyez-vous des traces de rouille visibles ?", "Particulièrement autour des passages de roue et bas de caisse", ImportanceHigh},
			{"Les phares sont-ils clairs (non ternis) ?", "Phares ternis = véhicule vieillissant ou mal entretenu", ImportanceLow},
			{"Y a-t-il des bosses, rayures ou traces d'impacts ?", "Estimez le coût des réparations nécessaires", ImportanceMedium},
			{"Les jantes sont-elles en bon état (pas de voile visible) ?", "Jantes abîmées = montages/démontages fréquents ou chocs", ImportanceMedium},
			{"Les pneus semblent-ils en bon état et identiques ?", "Pneus dépareillés = économies douteuses", ImportanceMedium},
		},
	}
}

func interiorSection() ChecklistSection {
	return ChecklistSection{
		Title: "État de l'intérieur",
		Icon:  "🪑",
		Items: []ChecklistItem{
			{"Le siège conducteur est-il très usé ?", "Usure importante = kilométrage potentiellement élevé", ImportanceHigh},
			{"Le volant et le levier de vitesse sont-ils usés ?", "Très révélateur du kilométrage réel", ImportanceHigh},
			{"Les pédales sont-elles très lisses/usées ?", "Usure des pédales = fort kilométrage", ImportanceHigh},
			{"Le tableau de bord montre-t-il des voyants allumés ?", "Voyants moteur, airbag, ESP = problèmes potentiels", ImportanceCritical},
			{"L'intérieur est-il propre et bien entretenu ?", "Reflète généralement l'entretien global du véhicule", ImportanceMedium},
			{"Y a-t-il des traces d'humidité ou de moisissure ?", "Risque d'infiltrations ou de véhicule inondé", ImportanceCritical},
		},
	}
}

func engineSection(mods []ChecklistMod) ChecklistSection {
	items := []ChecklistItem{
		{"Y a-t-il des photos du compartiment moteur ?", "Absence suspecte si aucune photo moteur", ImportanceHigh},
		{"Le moteur semble-t-il propre ?", "Trop propre = nettoyage pour cacher des fuites", ImportanceMedium},
		{"Voyez-vous des traces de fuite (huile, liquide de refroidissement) ?", "Traces noires ou vertes = fuites probables", ImportanceHigh},
		{"Les durites et flexibles semblent-ils en bon état ?", "Craquelures = remplacement à prévoir", ImportanceMedium},
	}

	if hasCategory(mods, model.CategoryEngine, model.CategoryElectronic) {
		items = append(items,
			ChecklistItem{"Repérez-vous des pièces aftermarket dans le moteur ?", "Admission, intercooler, tuyauteries modifiées, boîtier additionnel visible", ImportanceHigh},
			ChecklistItem{"Les modifications sont-elles visibles et proprement installées ?", "Installation propre = travail professionnel probable", ImportanceHigh},
		)
	}

	return ChecklistSection{Title: "Compartiment moteur", Icon: WrenchIcon, Items: items}
}

func runningGearSection(mods []ChecklistMod) ChecklistSection {
	items := []ChecklistItem{
		{"Les pneus s'usent-ils de manière uniforme ?", "Usure inégale = problème de géométrie ou suspension", ImportanceHigh},
		{"La garde au sol semble-t-elle normale ?", "Véhicule très bas = suspension modifiée", ImportanceMedium},
		{"Y a-t-il un espace égal entre les roues et les passages de roue ?", "Écart différent = ressorts fatigués ou rabaissement", ImportanceMedium},
	}

	if hasCategory(mods, model.CategoryChassis, model.CategoryWheels) {
		items = append(items,
			ChecklistItem{"Le véhicule semble-t-il anormalement bas ?", "Rabaissement > 40mm = confort et fiabilité impactés", ImportanceHigh},
			ChecklistItem{"Les roues dépassent-elles de la carrosserie ?", "INTERDIT au CT - élargisseurs ou jantes trop larges", ImportanceHigh},
		)
	}

	return ChecklistSection{Title: "Trains roulants et suspensions", Icon: "🛞", Items: items}
}

func modificationSection(mods []ChecklistMod) ChecklistSection {
	var items []ChecklistItem
	for _, mod := range mods {
		switch mod.ID {
		case "reprogrammation", "boitier_additionnel":
			items = append(items, ChecklistItem{
				fmt.Sprintf("Vérifiez la cohérence de l'usure pour un véhicule \"%s\"", mod.Name),
				"Embrayage, turbo et boîte sollicités = usure plus rapide",
				ImportanceHigh,
			})
		case "echappement":
			items = append(items, ChecklistItem{"L'échappement semble-t-il aftermarket ?", "Sortie(s) plus large(s), logo fabricant visible", ImportanceMedium})
		case "admission":
			items = append(items, ChecklistItem{"Voyez-vous un filtre à air sport / admission directe ?", "Souvent coloré (rouge, vert) ou en forme de cône", ImportanceMedium})
		case "suspension_sport", "rabaissement":
			items = append(items, ChecklistItem{"Les ressorts semblent-ils courts ou colorés ?", "Ressorts aftermarket souvent colorés (bleu, rouge)", ImportanceMedium})
		case "vitres_teintees":
			items = append(items, ChecklistItem{"Les vitres avant sont-elles teintées ?", "INTERDIT sur vitres avant (pare-brise et vitres conducteur/passager)", ImportanceHigh})
		case "body_kit":
			items = append(items, ChecklistItem{"Le kit carrosserie est-il bien ajusté ?", "Mauvais ajustement = qualité médiocre ou dégâts", ImportanceMedium})
		case "feux_modifies":
			items = append(items, ChecklistItem{"Les phares semblent-ils d'origine ?", "Phares aftermarket souvent brillants ou avec anneaux lumineux", ImportanceMedium})
		case "covering":
			items = append(items, ChecklistItem{"Le covering présente-t-il des bulles ou décollements ?", "État du covering révèle l'âge et la qualité de pose", ImportanceMedium})
		}
	}

	if len(items) == 0 {
		items = append(items, ChecklistItem{"Recherchez des indices de modifications non déclarées", "Éléments aftermarket, autocollants tuning, etc.", ImportanceMedium})
	}

	return ChecklistSection{Title: "Vérifications liées aux modifications détectées", Icon: SearchIcon, Items: items}
}

func hasCategory(mods []ChecklistMod, categories ...model.ModCategory) bool {
	for _, mod := range mods {
		for _, c := range categories {
			if mod.Category == c {
				return true
			}
		}
	}
	return false
}

func generalAdvice() []ChecklistAdvice {
	return []ChecklistAdvice{
		{"Demandez plus de photos", "N'hésitez pas à demander des photos supplémentaires de zones spécifiques (dessous de caisse, moteur à froid, compteur, etc.)"},
		{"Comparez avec des véhicules similaires", "Consultez d'autres annonces du même modèle pour repérer les différences"},
		{"Attention aux photos professionnelles", "Des photos trop professionnelles peuvent cacher un véhicule chez un marchand qui se fait passer pour un particulier"},
		{"Vérifiez la cohérence", "Le véhicule sur les photos doit correspondre à la description (couleur, options, kilométrage visible)"},
		{"Préférez la visite physique", "Les photos ne remplacent jamais une inspection en personne. Prévoyez toujours une visite avant tout engagement."},
	}
}
