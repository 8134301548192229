// Copyright (c) 2026 OWH Studio. All rights reserved.

package equipment

// builtinEquipment is the last link of the fallback chain: the rental page
// must never render empty, so a snapshot of the studio inventory ships with
// the binary. Rates are daily, in EUR.
var builtinEquipment = []Equipment{
	// Cameras
	{
		ID:          "bm-ursa-4k",
		Name:        "Blackmagic URSA 4K EF-Mount",
		Slug:        "bm-ursa-4k",
		Category:    "cameras",
		Description: "Cameră cinema 4K, montură EF (body)",
		DailyRate:   50,
		ImageURL:    "/produse/camere/blackmagic-ursa-4k.jpeg",
		IsAvailable: true,
	},
	{
		ID:          "sony-fs7-mk2",
		Name:        "Sony FS7 MkII + Metabones EF",
		Slug:        "sony-fs7-mk2",
		Category:    "cameras",
		Description: "Cameră profesionistă cu adaptor EF",
		DailyRate:   70,
		ImageURL:    "/produse/camere/sony-fs7-mkii.jpeg",
		IsAvailable: true,
	},
	{
		ID:          "bmpcc-4k-kit",
		Name:        "Blackmagic Pocket Cinema Camera 4K – kit",
		Slug:        "bmpcc-4k-kit",
		Category:    "cameras",
		Description: "SmallRig cage, Metabones 0.64x EF–MFT, SSD T5 500GB",
		DailyRate:   50,
		ImageURL:    "/produse/camere/bmpcc-4k.webp",
		IsAvailable: true,
	},
	{
		ID:          "canon-r6-mk2",
		Name:        "Canon R6 Mk II (body)",
		Slug:        "canon-r6-mk2",
		Category:    "cameras",
		Description: "Mirrorless full-frame",
		DailyRate:   50,
		ImageURL:    "/produse/camere/canon-r6-mk2.jpg",
		IsAvailable: true,
	},
	{
		ID:          "sony-fx3",
		Name:        "Sony FX3",
		Slug:        "sony-fx3",
		Category:    "cameras",
		Description: "Cinema camera profesională",
		DailyRate:   85,
		ImageURL:    "/produse/camere/sony-fx3.jpg",
		IsAvailable: true,
	},
	{
		ID:          "sony-a7iii",
		Name:        "Sony Alpha 7 III",
		Slug:        "sony-a7iii",
		Category:    "cameras",
		Description: "Full frame mirrorless",
		DailyRate:   40,
		ImageURL:    "/produse/camere/sony-a7iii.jpg",
		IsAvailable: true,
	},

	// Lenses
	{
		ID:          "canon-rf-24-70-2-8",
		Name:        "Canon RF 24–70mm f/2.8L IS USM",
		Slug:        "canon-rf-24-70-2-8",
		Category:    "lenses",
		Description: "Zoom profesional RF",
		DailyRate:   50,
		ImageURL:    "/produse/obiective/canon-rf-24-70.jpg",
		IsAvailable: true,
	},
	{
		ID:          "canon-rf-50-1-8",
		Name:        "Canon RF 50mm 1.8",
		Slug:        "canon-rf-50-1-8",
		Category:    "lenses",
		Description: "Prime RF",
		DailyRate:   15,
		ImageURL:    "/produse/obiective/canon-rf-50.jpg",
		IsAvailable: true,
	},
	{
		ID:          "sony-fe-50-1-8",
		Name:        "Sony FE 50mm 1.8",
		Slug:        "sony-fe-50-1-8",
		Category:    "lenses",
		Description: "Prime pentru Sony FE",
		DailyRate:   15,
		ImageURL:    "/produse/obiective/sony-fe-50.jpg",
		IsAvailable: true,
	},
	{
		ID:          "rokinon-cine-set",
		Name:        "Rokinon/Samyang EF Cine Set 16/24/35/50/85",
		Slug:        "rokinon-cine-set",
		Category:    "lenses",
		Description: "Set obiective cinema EF",
		DailyRate:   70,
		ImageURL:    "/produse/obiective/samyang-cine-set.jpeg",
		IsAvailable: true,
	},

	// Lighting
	{
		ID:          "godox-v1-pro",
		Name:        "Godox V1 Pro",
		Slug:        "godox-v1-pro",
		Category:    "lighting",
		Description: "Flash pentru Canon + accesorii",
		DailyRate:   15,
		ImageURL:    "/produse/lumini/godox-v1-pro.jpg",
		IsAvailable: true,
	},
	{
		ID:          "godox-v1-sony",
		Name:        "Godox V1 Flash for Sony",
		Slug:        "godox-v1-sony",
		Category:    "lighting",
		Description: "Blitz profesional TTL",
		DailyRate:   10,
		ImageURL:    "/produse/lumini/godox-v1-sony.jpg",
		IsAvailable: true,
	},
	{
		ID:          "kinoflo-diva-400",
		Name:        "Kino Flo Diva Lite 400",
		Slug:        "kinoflo-diva-400",
		Category:    "lighting",
		Description: "Lumină fluorescentă soft",
		DailyRate:   20,
		ImageURL:    "/produse/lumini/kinoflo-diva-400.jpg",
		IsAvailable: true,
	},

	// Audio
	{
		ID:          "lark-150-duo",
		Name:        "Hollyland Wireless Microphone – Lark 150 Duo",
		Slug:        "lark-150-duo",
		Category:    "audio",
		Description: "Sistem microfon wireless",
		DailyRate:   10,
		ImageURL:    "/produse/audio/hollyland-lark-150.jpg",
		IsAvailable: true,
	},
	{
		ID:          "rode-videomic-pro",
		Name:        "Rode VideoMic Pro",
		Slug:        "rode-videomic-pro",
		Category:    "audio",
		Description: "Shotgun pentru cameră",
		DailyRate:   10,
		ImageURL:    "/produse/audio/rode-videomic-pro.jpg",
		IsAvailable: true,
	},
	{
		ID:          "zoom-h4n",
		Name:        "Zoom Recorder H4n",
		Slug:        "zoom-h4n",
		Category:    "audio",
		Description: "Recorder portabil",
		DailyRate:   10,
		ImageURL:    "/produse/audio/zoom-h4n.jpg",
		IsAvailable: true,
	},
}

// BuiltinEquipment returns a copy of the built-in inventory snapshot.
func BuiltinEquipment() []Equipment {
	out := make([]Equipment, len(builtinEquipment))
	copy(out, builtinEquipment)
	return out
}
