package i18n

// Messages holds the labels used when composing an order message
type Messages struct {
	DailyTitle      string
	FullTitle       string
	FullSubtitle    string
	DailyItemsTitle string
	FullItemsTitle  string
	SelectedCount   string
	DeliveryFee     string
	Zone            string
	DailyPriceNote  string
	Name            string
	Phone           string
	Address         string
	Notes           string
	NotProvided     string
	FallbackNotice  string
}

var catalog = map[Language]Messages{
	English: {
		DailyTitle:      "New Order - Eat With Maddie",
		FullTitle:       "Full Menu Order - Eat With Maddie",
		FullSubtitle:    "(Items available on command)",
		DailyItemsTitle: "Selected dishes:",
		FullItemsTitle:  "Selected items:",
		SelectedCount:   "Selected dishes",
		DeliveryFee:     "Delivery fee",
		Zone:            "Delivery zone",
		DailyPriceNote:  "Prices are in accord to the daily menu.",
		Name:            "Your name",
		Phone:           "Phone number",
		Address:         "Delivery address",
		Notes:           "Special instructions",
		NotProvided:     "Not provided",
		FallbackNotice:  "Using fallback menu:",
	},
	French: {
		DailyTitle:      "Nouvelle commande - Eat With Maddie",
		FullTitle:       "Commande menu complet - Eat With Maddie",
		FullSubtitle:    "(Articles sur commande)",
		DailyItemsTitle: "Plats sélectionnés:",
		FullItemsTitle:  "Articles sélectionnés:",
		SelectedCount:   "Plats sélectionnés",
		DeliveryFee:     "Frais de livraison",
		Zone:            "Zone de livraison",
		DailyPriceNote:  "Les prix sont confirmés selon le menu du jour.",
		Name:            "Votre nom",
		Phone:           "Numéro de téléphone",
		Address:         "Adresse de livraison",
		Notes:           "Instructions spéciales",
		NotProvided:     "Non renseigné",
		FallbackNotice:  "Utilisation du menu de secours :",
	},
}

// For returns the labels for lang, falling back to English
func For(lang Language) Messages {
	if m, ok := catalog[lang]; ok {
		return m
	}
	return catalog[DefaultLanguage]
}
