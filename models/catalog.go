package models

// FoundationCatalog is the fixed shade lineup offered by the kiosk. It
// feeds both the suggestion prompt and the client-side picker. SKUs are
// ordered light to deep.
var FoundationCatalog = []Foundation{
	{SKU: "30W", Name: "30 Warm", Hex: "#e8c5a7", Undertone: "warm"},
	{SKU: "40N", Name: "40 Neutral", Hex: "#deba95", Undertone: "neutral"},
	{SKU: "50N", Name: "50 Neutral", Hex: "#d6b28f", Undertone: "neutral"},
	{SKU: "60C", Name: "60 Cool", Hex: "#d9a781", Undertone: "cool"},
	{SKU: "80N", Name: "80 Neutral", Hex: "#daa981", Undertone: "neutral"},
	{SKU: "100N", Name: "100 Neutral", Hex: "#e3b287", Undertone: "neutral"},
	{SKU: "110W", Name: "110 Warm", Hex: "#dfb382", Undertone: "warm"},
	{SKU: "120W", Name: "120 Warm", Hex: "#d9ae8b", Undertone: "warm"},
	{SKU: "180C", Name: "180 Cool", Hex: "#daab7d", Undertone: "cool"},
	{SKU: "220N", Name: "220 Neutral", Hex: "#d7a372", Undertone: "neutral"},
	{SKU: "240N", Name: "240 Neutral", Hex: "#c98d61", Undertone: "neutral"},
	{SKU: "280N", Name: "280 Neutral", Hex: "#d9ad7c", Undertone: "neutral"},
	{SKU: "325C", Name: "325 Cool", Hex: "#d7a77c", Undertone: "cool"},
	{SKU: "330W", Name: "330 Warm", Hex: "#d49353", Undertone: "warm"},
	{SKU: "340N", Name: "340 Neutral", Hex: "#e0b27f", Undertone: "neutral"},
	{SKU: "380N", Name: "380 Neutral", Hex: "#e5b481", Undertone: "neutral"},
	{SKU: "400N", Name: "400 Neutral", Hex: "#d4a074", Undertone: "neutral"},
	{SKU: "440W", Name: "440 Warm", Hex: "#ca8859", Undertone: "warm"},
	{SKU: "460N", Name: "460 Neutral", Hex: "#d8a472", Undertone: "neutral"},
	{SKU: "470W", Name: "470 Warm", Hex: "#bf804c", Undertone: "warm"},
	{SKU: "480C", Name: "480 Cool", Hex: "#d6976b", Undertone: "cool"},
	{SKU: "485N", Name: "485 Neutral", Hex: "#c47a40", Undertone: "neutral"},
	{SKU: "490N", Name: "490 Neutral", Hex: "#b8835b", Undertone: "neutral"},
	{SKU: "500W", Name: "500 Warm", Hex: "#b66d3d", Undertone: "warm"},
	{SKU: "540W", Name: "540 Warm", Hex: "#bc713d", Undertone: "warm"},
	{SKU: "550W", Name: "550 Warm", Hex: "#b3662a", Undertone: "warm"},
	{SKU: "555W", Name: "555 Warm", Hex: "#b76629", Undertone: "warm"},
	{SKU: "560N", Name: "560 Neutral", Hex: "#b47141", Undertone: "neutral"},
	{SKU: "600N", Name: "600 Neutral", Hex: "#b06733", Undertone: "neutral"},
	{SKU: "610W", Name: "610 Warm", Hex: "#9d5629", Undertone: "warm"},
	{SKU: "620C", Name: "620 Cool", Hex: "#995028", Undertone: "cool"},
	{SKU: "640W", Name: "640 Warm", Hex: "#965430", Undertone: "warm"},
	{SKU: "720N", Name: "720 Neutral", Hex: "#652f18", Undertone: "neutral"},
}

// FindFoundation returns the catalog entry for a SKU, or false when the
// SKU is not part of the lineup.
func FindFoundation(sku string) (Foundation, bool) {
	for _, f := range FoundationCatalog {
		if f.SKU == sku {
			return f, true
		}
	}
	return Foundation{}, false
}

// CatalogSKUs returns the SKU set of the catalog in lineup order.
func CatalogSKUs() []string {
	skus := make([]string, 0, len(FoundationCatalog))
	for _, f := range FoundationCatalog {
		skus = append(skus, f.SKU)
	}
	return skus
}
