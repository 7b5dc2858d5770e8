package refdata

import "github.com/venatus57/autoanalyseur/internal/model"

// FindModification looks up a catalog entry by id.
func FindModification(id string) (model.ModificationRecord, bool) {
	for _, rec := range Catalog {
		if rec.ID == id {
			return rec, true
		}
	}
	return model.ModificationRecord{}, false
}

// CatalogIDs returns every known modification id.
func CatalogIDs() []string {
	out := make([]string, 0, len(Catalog))
	for _, rec := range Catalog {
		out = append(out, rec.ID)
	}
	return out
}

// Catalog is the known-modification reference. Keyword order matters: the
// first keyword of each entry is the canonical detection token, and entries
// are scanned in declaration order so more specific entries (decatalyseur)
// must precede broader ones sharing keywords (echappement handles overlap
// via its own keyword list).
var Catalog = []model.ModificationRecord{
	{
		ID:       "reprogrammation",
		Name:     "Reprogrammation moteur",
		Category: model.CategoryEngine,
		Keywords: []string{"reprog", "reprogrammation", "stage 1", "stage 2", "stage 3", "chip tuning", "chiptuning", "remap", "flash", "préparation moteur", "optimisation moteur", "boitier additionnel"},
		Objective: "Augmentation des performances (puissance et couple)",
		Benefits: []string{
			"Gain de puissance (10-40% selon stage)",
			"Couple accru sur toute la plage de régime",
			"Meilleure réponse à l'accélérateur",
		},
		Risks: []string{
			"Usure prématurée de l'embrayage",
			"Sollicitation accrue du turbo",
			"Contraintes supplémentaires sur la boîte de vitesses",
			"Risque de casse moteur si mal réalisée",
			"Annulation de la garantie constructeur",
		},
		Legal: model.LegalImpact{
			Level:          model.LegalNonCompliant,
			Detail:         "Non conforme sans homologation DREAL. Le véhicule doit être réceptionné à titre isolé pour être légal.",
			InspectionRisk: "Refus possible si détection de modifications non déclarées",
		},
		Resale:      model.ResaleImpact{Detail: "Réduit significativement le bassin d'acheteurs potentiels.", Factor: 0.85},
		InsurerNote: "Non déclarée = nullité du contrat en cas de sinistre",
		Verdict:     model.VerdictRisk,
		Impact:      model.ScoreImpact{Mechanical: -25, Legal: -35, Resale: -15},
	},
	{
		ID:       "turbo_upgrade",
		Name:     "Upgrade turbo",
		Category: model.CategoryEngine,
		Keywords: []string{"gros turbo", "turbo hybride", "upgrade turbo", "turbo préparé", "bigger turbo", "turbo garrett", "turbo borgwarner"},
		Objective: "Augmentation significative de la puissance",
		Benefits:  []string{"Gains de puissance importants (50-100%+)", "Potentiel performance élevé"},
		Risks: []string{
			"Fiabilité moteur compromise",
			"Nécessite renforcement de nombreux composants",
			"Surchauffe possible",
			"Usure accélérée de tous les organes mécaniques",
		},
		Legal: model.LegalImpact{
			Level:          model.LegalNonCompliant,
			Detail:         "Modification majeure nécessitant homologation complète",
			InspectionRisk: "Refus si détecté",
		},
		Resale:      model.ResaleImpact{Detail: "Marché très restreint, méfiance des acheteurs classiques", Factor: 0.70},
		InsurerNote: "Obligation de déclaration, surprime importante ou refus",
		Verdict:     model.VerdictRisk,
		Impact:      model.ScoreImpact{Mechanical: -40, Legal: -40, Resale: -25},
	},
	{
		ID:       "admission",
		Name:     "Kit d'admission sport",
		Category: model.CategoryEngine,
		Keywords: []string{"admission directe", "filtre à air sport", "boite à air", "kit admission", "cold air intake", "bmc", "k&n", "pipercross"},
		Objective: "Amélioration du flux d'air moteur",
		Benefits:  []string{"Sonorité moteur plus sportive", "Léger gain de puissance possible (2-5%)"},
		Risks: []string{
			"Risque d'aspiration d'eau si mal positionné",
			"Filtration parfois moins efficace",
			"Sur diesel turbo, perturbation débitmètre fréquente",
		},
		Legal: model.LegalImpact{
			Level:          model.LegalTolerated,
			Detail:         "Généralement toléré si homologué",
			InspectionRisk: "Faible risque",
		},
		Resale:       model.ResaleImpact{Detail: "Impact minime, facilement réversible", Factor: 0.98},
		MechanicNote: "Sur diesel turbo, vérifier le bon fonctionnement du débitmètre (codes défaut, fumées).",
		Verdict:      model.VerdictMonitor,
		Impact:       model.ScoreImpact{Mechanical: -8, Legal: -5, Resale: -2},
	},
	{
		ID:       "echappement",
		Name:     "Échappement sport",
		Category: model.CategoryEngine,
		Keywords: []string{"échappement sport", "ligne inox", "downpipe", "silencieux sport", "akrapovic", "milltek", "scorpion", "supersprint", "catback", "cat-back"},
		Objective: "Performance et sonorité",
		Benefits:  []string{"Gain de puissance modéré (3-15%)", "Sonorité sportive"},
		Risks:     []string{"Drone à certains régimes possible", "Corrosion si matériaux bas de gamme"},
		Legal: model.LegalImpact{
			Level:          model.LegalConditional,
			Detail:         "Légal si normes sonores respectées (<82dB). Décatalyseur strictement interdit.",
			InspectionRisk: "Refus si décatalyseur ou bruit excessif",
		},
		Resale:  model.ResaleImpact{Detail: "Dépend du type d'acheteur", Factor: 0.95},
		Verdict: model.VerdictMonitor,
		Impact:  model.ScoreImpact{Mechanical: -3, Legal: -15, Resale: -5},
	},
	{
		ID:       "decatalyseur",
		Name:     "Suppression catalyseur",
		Category: model.CategoryEngine,
		Keywords: []string{"décata", "decat", "suppression catalyseur", "sans catalyseur", "no cat"},
		Objective: "Gain de puissance et sonorité",
		Benefits:  []string{"Gain de puissance (5-15%)", "Réduction des contre-pressions d'échappement"},
		Risks:     []string{"Pollution accrue", "Dégradation de la sonde lambda possible"},
		Legal: model.LegalImpact{
			Level:          model.LegalIllegal,
			Detail:         "STRICTEMENT INTERDIT. Infraction pénale. Amende jusqu'à 7500€.",
			InspectionRisk: "Refus systématique du contrôle technique",
		},
		Resale:      model.ResaleImpact{Detail: "Véhicule non vendable en l'état légalement", Factor: 0.60},
		InsurerNote: "Nullité du contrat",
		Verdict:     model.VerdictRisk,
		Impact:      model.ScoreImpact{Mechanical: -10, Legal: -50, Resale: -35},
	},
	{
		ID:       "intercooler",
		Name:     "Intercooler renforcé",
		Category: model.CategoryEngine,
		Keywords: []string{"intercooler", "échangeur", "fmic", "front mount intercooler", "gros échangeur"},
		Objective: "Meilleur refroidissement de l'air d'admission",
		Benefits:  []string{"Températures d'admission réduites", "Performances plus stables à chaud"},
		Risks: []string{
			"Indice fort de préparation moteur associée",
			"Rarement monté seul",
			"Risques de fuites si mal installé",
		},
		Legal: model.LegalImpact{
			Level:          model.LegalConditional,
			Detail:         "Toléré isolément mais souvent signe d'autres modifications",
			InspectionRisk: "Faible risque direct",
		},
		Resale:       model.ResaleImpact{Detail: "Suggère une préparation, méfiance des acheteurs", Factor: 0.93},
		MechanicNote: "Un intercooler seul est rare. Chercher des indices de reprogrammation non déclarée.",
		Verdict:      model.VerdictMonitor,
		Impact:       model.ScoreImpact{Mechanical: -8, Legal: -5, Resale: -5},
	},
	{
		ID:       "embrayage_renforce",
		Name:     "Embrayage renforcé",
		Category: model.CategoryEngine,
		Keywords: []string{"embrayage renforcé", "embrayage sachs", "clutch masters", "embrayage sport", "embrayage racing", "kit embrayage"},
		Objective: "Supporter une puissance accrue",
		Benefits:  []string{"Meilleure tenue à la puissance", "Durabilité accrue sous contrainte"},
		Risks: []string{
			"Indice majeur de reprogrammation passée ou présente",
			"Confort de conduite dégradé (point dur)",
			"Volant moteur potentiellement modifié aussi",
		},
		Legal: model.LegalImpact{
			Level:          model.LegalTolerated,
			Detail:         "Pièce légale mais révélatrice",
			InspectionRisk: "Aucun risque direct",
		},
		Resale:       model.ResaleImpact{Detail: "Suggère fortement une préparation moteur", Factor: 0.85},
		MechanicNote: "Un embrayage renforcé sans reprog déclarée = reprog cachée à 99%. Véhicule sollicité.",
		InsurerNote:  "Indice fort de modification puissance non déclarée.",
		Verdict:      model.VerdictRisk,
		Impact:       model.ScoreImpact{Mechanical: -20, Legal: -15, Resale: -15},
	},
	{
		ID:       "dump_valve",
		Name:     "Dump valve / Blow-off valve",
		Category: model.CategoryEngine,
		Keywords: []string{"dump valve", "blow off", "bov", "soupape de décharge"},
		Objective: "Sonorité et/ou performance turbo",
		Benefits:  []string{"Sonorité caractéristique", "Protection turbo sur véhicules préparés"},
		Risks: []string{
			"Souvent associée à une reprogrammation",
			"Peut perturber la gestion moteur sur certains véhicules",
		},
		Legal: model.LegalImpact{
			Level:          model.LegalTolerated,
			Detail:         "Légal mais révélateur",
			InspectionRisk: "Aucun risque",
		},
		Resale:       model.ResaleImpact{Detail: "Image tuning qui rebute certains acheteurs", Factor: 0.92},
		MechanicNote: "Généralement accompagnée d'autres modifications. Vérifier si reprog.",
		Verdict:      model.VerdictMonitor,
		Impact:       model.ScoreImpact{Mechanical: -5, Legal: -3, Resale: -8},
	},
	{
		ID:       "suspension_sport",
		Name:     "Suspension sport",
		Category: model.CategoryChassis,
		Keywords: []string{"suspension sport", "amortisseurs sport", "bilstein", "koni", "öhlins", "combinés filetés", "coilovers"},
		Objective: "Amélioration de la tenue de route",
		Benefits:  []string{"Tenue de route améliorée", "Réduction du roulis"},
		Risks:     []string{"Confort dégradé", "Usure pneus potentiellement accélérée", "Fatigue de la caisse à long terme"},
		Legal: model.LegalImpact{
			Level:          model.LegalConditional,
			Detail:         "Légal si homologué et garde au sol respectée (>10cm)",
			InspectionRisk: "Contrôle de la garde au sol",
		},
		Resale:  model.ResaleImpact{Detail: "Dépend du marché cible", Factor: 0.95},
		Verdict: model.VerdictMonitor,
		Impact:  model.ScoreImpact{Mechanical: -5, Legal: -5, Resale: -3},
	},
	{
		ID:       "rabaissement",
		Name:     "Rabaissement du châssis",
		Category: model.CategoryChassis,
		Keywords: []string{"rabaissé", "rabaissement", "lowered", "slammed", "ressorts courts", "-30mm", "-40mm", "-50mm"},
		Objective: "Esthétique et tenue de route",
		Benefits:  []string{"Centre de gravité abaissé", "Look plus sportif"},
		Risks: []string{
			"Usure prématurée des amortisseurs",
			"Risque de toucher sur ralentisseurs",
			"Géométrie compromise si excessif",
		},
		Legal: model.LegalImpact{
			Level:          model.LegalConditional,
			Detail:         "Interdit si garde au sol < 10cm. Nécessite homologation pour rabaissement important.",
			InspectionRisk: "Refus si garde au sol insuffisante",
		},
		Resale:  model.ResaleImpact{Detail: "Réduit le bassin d'acheteurs", Factor: 0.88},
		Verdict: model.VerdictMonitor,
		Impact:  model.ScoreImpact{Mechanical: -12, Legal: -15, Resale: -10},
	},
	{
		ID:       "barre_antirapprochement",
		Name:     "Barre anti-rapprochement",
		Category: model.CategoryChassis,
		Keywords: []string{"barre anti-rapprochement", "barre de renfort", "strut bar", "tower bar"},
		Objective: "Rigidification du châssis",
		Benefits:  []string{"Rigidité accrue de la caisse", "Précision de direction améliorée"},
		Risks:     []string{"Très faibles", "Possible gêne pour maintenance"},
		Legal: model.LegalImpact{
			Level:          model.LegalTolerated,
			Detail:         "Aucun problème légal",
			InspectionRisk: "Aucun risque",
		},
		Resale:  model.ResaleImpact{Detail: "Généralement apprécié", Factor: 1.00},
		Verdict: model.VerdictSound,
		Impact:  model.ScoreImpact{},
	},
	{
		ID:       "freins",
		Name:     "Kit freinage renforcé",
		Category: model.CategoryChassis,
		Keywords: []string{"gros freins", "kit freins", "disques percés", "disques rainurés", "brembo", "ap racing", "étriers 4 pistons", "étriers 6 pistons"},
		Objective: "Amélioration du freinage",
		Benefits:  []string{"Distances de freinage réduites", "Meilleure résistance au fading"},
		Risks:     []string{"Nécessite jantes compatibles", "Maintenance plus coûteuse"},
		Legal: model.LegalImpact{
			Level:          model.LegalTolerated,
			Detail:         "Légal si performance maintenue ou améliorée",
			InspectionRisk: "Aucun risque si bien installé",
		},
		Resale:  model.ResaleImpact{Detail: "Généralement valorisé", Factor: 1.02},
		Verdict: model.VerdictSound,
		Impact:  model.ScoreImpact{Mechanical: 2, Legal: 0, Resale: 2},
	},
	{
		ID:       "jantes_non_oem",
		Name:     "Jantes non OEM",
		Category: model.CategoryWheels,
		Keywords: []string{"jantes alu", "jantes 17", "jantes 18", "jantes 19", "jantes 20", "bbs", "oz racing", "rotiform", "vossen"},
		Objective: "Esthétique et performance",
		Benefits:  []string{"Look personnalisé", "Potentiel allègement (jantes forgées)"},
		Risks:     []string{"Pneus plus chers si dimensions non standard", "Confort réduit si profil plus bas"},
		Legal: model.LegalImpact{
			Level:          model.LegalConditional,
			Detail:         "Légal si dimensions compatibles avec le certificat de conformité",
			InspectionRisk: "Vérification des dimensions",
		},
		Resale:  model.ResaleImpact{Detail: "Dépend du goût de l'acheteur", Factor: 0.97},
		Verdict: model.VerdictMonitor,
		Impact:  model.ScoreImpact{Mechanical: -2, Legal: -5, Resale: -3},
	},
	{
		ID:       "elargisseurs",
		Name:     "Élargisseurs de voie",
		Category: model.CategoryWheels,
		Keywords: []string{"élargisseurs", "cales de voie", "spacers", "wheel spacers"},
		Objective: "Élargir la voie pour look ou tenue de route",
		Benefits:  []string{"Look plus large", "Stabilité potentiellement améliorée"},
		Risks: []string{
			"Contraintes sur roulements",
			"Risque de dépassement des ailes",
			"Usure prématurée des cardans et rotules",
		},
		Legal: model.LegalImpact{
			Level:          model.LegalConditional,
			Detail:         "Interdit si roues dépassent de la carrosserie",
			InspectionRisk: "Refus si roues débordantes",
		},
		Resale:  model.ResaleImpact{Detail: "Souvent mal perçu", Factor: 0.90},
		Verdict: model.VerdictMonitor,
		Impact:  model.ScoreImpact{Mechanical: -10, Legal: -10, Resale: -8},
	},
	{
		ID:       "covering",
		Name:     "Covering / Car wrap",
		Category: model.CategoryAesthetic,
		Keywords: []string{"covering", "wrap", "total covering", "car wrap"},
		Objective: "Changement esthétique temporaire",
		Benefits:  []string{"Protection de la peinture d'origine", "Look personnalisé réversible"},
		Risks:     []string{"Qualité variable selon le poseur", "Peut masquer des défauts de carrosserie"},
		Legal: model.LegalImpact{
			Level:          model.LegalConditional,
			Detail:         "Légal mais à déclarer sur la carte grise si changement de couleur apparent",
			InspectionRisk: "Aucun problème",
		},
		Resale:  model.ResaleImpact{Detail: "Peut cacher l'état réel de la carrosserie", Factor: 0.95},
		Verdict: model.VerdictMonitor,
		Impact:  model.ScoreImpact{Mechanical: 0, Legal: -3, Resale: -5},
	},
	{
		ID:       "vitres_teintees",
		Name:     "Vitres teintées",
		Category: model.CategoryAesthetic,
		Keywords: []string{"vitres teintées", "film teinté", "vitres fumées", "tinted windows"},
		Objective: "Esthétique et intimité",
		Benefits:  []string{"Protection thermique", "Intimité accrue"},
		Risks:     []string{"Visibilité réduite de nuit"},
		Legal: model.LegalImpact{
			Level:          model.LegalConditional,
			Detail:         "Interdit sur pare-brise et vitres avant (TLV min 70%). Toléré à l'arrière.",
			InspectionRisk: "Refus si vitres avant teintées",
		},
		Resale:  model.ResaleImpact{Detail: "Généralement apprécié si légal", Factor: 0.98},
		Verdict: model.VerdictMonitor,
		Impact:  model.ScoreImpact{Mechanical: 0, Legal: -8, Resale: 0},
	},
	{
		ID:       "feux_modifies",
		Name:     "Phares/feux modifiés",
		Category: model.CategoryAesthetic,
		Keywords: []string{"feux led", "phares xenon", "angel eyes", "feux aftermarket", "feux fumés"},
		Objective: "Esthétique ou éclairage amélioré",
		Benefits:  []string{"Look personnalisé", "Potentiel meilleur éclairage"},
		Risks:     []string{"Éblouissement des autres usagers", "Étanchéité parfois compromise"},
		Legal: model.LegalImpact{
			Level:          model.LegalConditional,
			Detail:         "Interdit si non homologué. Xénon aftermarket sans lave-phares = interdit.",
			InspectionRisk: "Refus si non conforme",
		},
		Resale:  model.ResaleImpact{Detail: "Souvent mal perçu par acheteurs classiques", Factor: 0.92},
		Verdict: model.VerdictMonitor,
		Impact:  model.ScoreImpact{Mechanical: 0, Legal: -15, Resale: -8},
	},
	{
		ID:       "body_kit",
		Name:     "Kit carrosserie / Body kit",
		Category: model.CategoryAesthetic,
		Keywords: []string{"body kit", "kit carrosserie", "pare-chocs sport", "aileron", "spoiler", "diffuseur", "bas de caisse", "lame avant"},
		Objective: "Look sportif",
		Benefits:  []string{"Esthétique personnalisée"},
		Risks:     []string{"Qualité très variable", "Ajustement souvent approximatif", "Masque potentiellement des dégâts"},
		Legal: model.LegalImpact{
			Level:          model.LegalConditional,
			Detail:         "Doit être homologué et ne pas créer de danger pour piétons",
			InspectionRisk: "Contrôle des éléments saillants",
		},
		Resale:  model.ResaleImpact{Detail: "Réduit le bassin d'acheteurs", Factor: 0.88},
		Verdict: model.VerdictMonitor,
		Impact:  model.ScoreImpact{Mechanical: -2, Legal: -10, Resale: -10},
	},
	{
		ID:       "boitier_additionnel",
		Name:     "Boîtier additionnel",
		Category: model.CategoryElectronic,
		Keywords: []string{"boitier additionnel", "piggyback", "powerbox", "tuning box", "racechip"},
		Objective: "Gain de puissance (présenté comme réversible)",
		Benefits:  []string{"ECU d'origine non flashé", "Gain de puissance (10-25%)"},
		Risks: []string{
			"Mêmes contraintes mécaniques qu'une reprogrammation",
			"Usure accélérée embrayage, turbo, boîte",
			"Souvent retiré avant vente = historique caché",
		},
		Legal: model.LegalImpact{
			Level:          model.LegalNonCompliant,
			Detail:         "Légalement équivalent à une reprog : modification de puissance non déclarée",
			InspectionRisk: "Non détecté mais véhicule non conforme",
		},
		Resale:       model.ResaleImpact{Detail: "Même impact qu'une reprog sur la mécanique", Factor: 0.88},
		MechanicNote: "Un boîtier additionnel sollicite autant la mécanique qu'une reprog. Vérifier embrayage/turbo.",
		InsurerNote:  "Obligatoirement déclaré = surprime ou refus. Non déclaré = nullité contrat.",
		Verdict:      model.VerdictRisk,
		Impact:       model.ScoreImpact{Mechanical: -22, Legal: -30, Resale: -12},
	},
	{
		ID:       "suppression_fap",
		Name:     "Suppression FAP/EGR",
		Category: model.CategoryElectronic,
		Keywords: []string{"suppression fap", "fap off", "egr off", "dpf delete", "fap supprimé", "sans fap"},
		Objective: "Fiabilité perçue et performances",
		Benefits:  []string{"Élimination des problèmes liés au FAP"},
		Risks:     []string{"Pollution massive", "Modification irréversible de l'ECU"},
		Legal: model.LegalImpact{
			Level:          model.LegalIllegal,
			Detail:         "STRICTEMENT INTERDIT. Infraction pénale. Amende jusqu'à 7500€.",
			InspectionRisk: "Refus systématique (test opacité)",
		},
		Resale:      model.ResaleImpact{Detail: "Véhicule invendable légalement", Factor: 0.50},
		InsurerNote: "Nullité du contrat",
		Verdict:     model.VerdictRisk,
		Impact:      model.ScoreImpact{Mechanical: -5, Legal: -50, Resale: -40},
	},
	{
		ID:       "suppression_assistance",
		Name:     "Suppression/modification assistances",
		Category: model.CategoryElectronic,
		Keywords: []string{"esp off", "suppression esp", "désactivation abs", "kill switch", "anti-lag"},
		Objective: "Conduite sportive pure",
		Benefits:  []string{"Usage circuit"},
		Risks:     []string{"Sécurité gravement compromise", "Dangereux sur route ouverte"},
		Legal: model.LegalImpact{
			Level:          model.LegalIllegal,
			Detail:         "Interdit de supprimer définitivement les aides à la conduite",
			InspectionRisk: "Refus si détecté",
		},
		Resale:      model.ResaleImpact{Detail: "Véhicule difficile à vendre", Factor: 0.65},
		InsurerNote: "Nullité probable du contrat",
		Verdict:     model.VerdictRisk,
		Impact:      model.ScoreImpact{Mechanical: 0, Legal: -45, Resale: -30},
	},
	{
		ID:       "sono",
		Name:     "Installation sono aftermarket",
		Category: model.CategoryElectronic,
		Keywords: []string{"sono", "subwoofer", "ampli", "installation sono", "car audio", "système audio"},
		Objective: "Qualité audio améliorée",
		Benefits:  []string{"Qualité sonore supérieure"},
		Risks:     []string{"Risque court-circuit si mal installé", "Sollicitation batterie/alternateur"},
		Legal: model.LegalImpact{
			Level:          model.LegalTolerated,
			Detail:         "Aucun problème légal",
			InspectionRisk: "Aucun risque",
		},
		Resale:  model.ResaleImpact{Detail: "Dépend de l'installation", Factor: 0.98},
		Verdict: model.VerdictSound,
		Impact:  model.ScoreImpact{Mechanical: -2, Legal: 0, Resale: -2},
	},
}
