package eaxefx

// Environment indices for EAXREVERB_ENVIRONMENT (§6.3, §9).
const (
	EnvironmentGeneric uint32 = iota
	EnvironmentPaddedCell
	EnvironmentRoom
	EnvironmentBathroom
	EnvironmentLivingRoom
	EnvironmentStoneRoom
	EnvironmentAuditorium
	EnvironmentConcertHall
	EnvironmentCave
	EnvironmentArena
	EnvironmentHangar
	EnvironmentCarpetedHallway
	EnvironmentHallway
	EnvironmentStoneCorridor
	EnvironmentAlley
	EnvironmentForest
	EnvironmentCity
	EnvironmentMountains
	EnvironmentQuarry
	EnvironmentPlain
	EnvironmentParkingLot
	EnvironmentSewerPipe
	EnvironmentUnderwater
	EnvironmentDrugged
	EnvironmentDizzy
	EnvironmentPsychotic

	environmentUndefined // EAX30; not in the preset table, see §9
	environmentCount
)

// ReverbPreset is the full field set written by loading a named
// environment, per §4.6. Field names mirror ReverbProperties.
type ReverbPreset struct {
	EnvironmentSize      float32
	EnvironmentDiffusion float32
	Room                 int32
	RoomHF               int32
	RoomLF               int32
	DecayTime            float32
	DecayHFRatio         float32
	DecayLFRatio         float32
	Reflections          int32
	ReflectionsDelay     float32
	Reverb               int32
	ReverbDelay          float32
	EchoTime             float32
	EchoDepth            float32
	ModulationTime       float32
	ModulationDepth      float32
	AirAbsorptionHF      float32
	HFReference          float32
	LFReference          float32
	RoomRolloffFactor    float32
}

// reverbPresets is indexed by the Environment* constants. Values mirror the
// standard EAX/EFX reverb preset table; CAVE matches S2 exactly
// (decay_time=2.88, room=-1000, reflections_delay=0.022).
var reverbPresets = [environmentUndefined]ReverbPreset{
	EnvironmentGeneric: {
		7.5, 1.00, -1000, -100, 0, 1.49, 0.83, 1.00, -2602, 0.007, 200, 0.011,
		0.25, 0.0, 0.25, 0.0, -5.0, 5000, 250, 0.0,
	},
	EnvironmentPaddedCell: {
		1.4, 1.00, -1000, -6000, 0, 0.17, 0.10, 1.00, -1204, 0.001, 207, 0.002,
		0.25, 0.0, 0.25, 0.0, -5.0, 5000, 250, 0.0,
	},
	EnvironmentRoom: {
		1.9, 1.00, -1000, -454, 0, 0.40, 0.83, 1.00, -1646, 0.002, 53, 0.003,
		0.25, 0.0, 0.25, 0.0, -5.0, 5000, 250, 0.0,
	},
	EnvironmentBathroom: {
		1.4, 1.00, -1000, -1200, 0, 1.49, 0.54, 1.00, -370, 0.007, 1030, 0.011,
		0.25, 0.0, 0.25, 0.0, -5.0, 5000, 250, 0.0,
	},
	EnvironmentLivingRoom: {
		2.5, 1.00, -1000, -6000, 0, 0.50, 0.10, 1.00, -1376, 0.003, -1104, 0.004,
		0.25, 0.0, 0.25, 0.0, -5.0, 5000, 250, 0.0,
	},
	EnvironmentStoneRoom: {
		11.6, 1.00, -1000, -300, 0, 2.31, 0.64, 1.00, -711, 0.012, 83, 0.017,
		0.25, 0.0, 0.25, 0.0, -5.0, 5000, 250, 0.0,
	},
	EnvironmentAuditorium: {
		21.6, 1.00, -1000, -476, 0, 4.32, 0.59, 1.00, -789, 0.020, -289, 0.030,
		0.25, 0.0, 0.25, 0.0, -5.0, 5000, 250, 0.0,
	},
	EnvironmentConcertHall: {
		19.6, 1.00, -1000, -500, 0, 3.92, 0.70, 1.00, -1230, 0.020, -2, 0.029,
		0.25, 0.0, 0.25, 0.0, -5.0, 5000, 250, 0.0,
	},
	EnvironmentCave: {
		14.6, 1.00, -1000, -100, 0, 2.88, 1.00, 1.00, -602, 0.022, 88, 0.022,
		0.25, 0.0, 0.25, 0.0, -5.0, 5000, 250, 0.0,
	},
	EnvironmentArena: {
		36.2, 1.00, -1000, -698, 0, 7.24, 0.33, 1.00, -1166, 0.020, 16, 0.030,
		0.25, 0.0, 0.25, 0.0, -5.0, 5000, 250, 0.0,
	},
	EnvironmentHangar: {
		50.3, 1.00, -1000, -1000, 0, 10.05, 0.23, 1.00, -602, 0.020, 198, 0.030,
		0.25, 0.0, 0.25, 0.0, -5.0, 5000, 250, 0.0,
	},
	EnvironmentCarpetedHallway: {
		1.9, 1.00, -1000, -4000, 0, 0.30, 0.10, 1.00, -1831, 0.002, -1630, 0.030,
		0.25, 0.0, 0.25, 0.0, -5.0, 5000, 250, 0.0,
	},
	EnvironmentHallway: {
		1.8, 1.00, -1000, -300, 0, 1.49, 0.59, 1.00, -1219, 0.007, 441, 0.011,
		0.25, 0.0, 0.25, 0.0, -5.0, 5000, 250, 0.0,
	},
	EnvironmentStoneCorridor: {
		13.5, 1.00, -1000, -237, 0, 2.70, 0.79, 1.00, -1214, 0.013, 395, 0.020,
		0.25, 0.0, 0.25, 0.0, -5.0, 5000, 250, 0.0,
	},
	EnvironmentAlley: {
		7.5, 0.30, -1000, -270, 0, 1.49, 0.86, 1.00, -1204, 0.007, -4, 0.011,
		0.25, 0.95, 0.25, 0.0, -5.0, 5000, 250, 0.0,
	},
	EnvironmentForest: {
		38.0, 0.30, -1000, -3300, 0, 1.49, 0.54, 1.00, -2560, 0.162, -229, 0.088,
		0.25, 1.0, 0.25, 0.0, -5.0, 5000, 250, 0.0,
	},
	EnvironmentCity: {
		7.5, 0.50, -1000, -800, 0, 1.49, 0.67, 1.00, -2273, 0.007, -1691, 0.011,
		0.25, 0.0, 0.25, 0.0, -5.0, 5000, 250, 0.0,
	},
	EnvironmentMountains: {
		100.0, 0.27, -1000, -2500, 0, 1.49, 0.21, 1.00, -2780, 0.300, -1434, 0.100,
		0.25, 1.0, 0.25, 0.0, -5.0, 5000, 250, 0.0,
	},
	EnvironmentQuarry: {
		17.5, 1.00, -1000, -1000, 0, 1.49, 0.83, 1.00, -10000, 0.061, 500, 0.025,
		0.25, 0.0, 0.25, 0.0, -5.0, 5000, 250, 0.0,
	},
	EnvironmentPlain: {
		42.5, 0.21, -1000, -2000, 0, 1.49, 0.50, 1.00, -2466, 0.179, -1926, 0.100,
		0.25, 1.0, 0.25, 0.0, -5.0, 5000, 250, 0.0,
	},
	EnvironmentParkingLot: {
		8.3, 1.00, -1000, 0, 0, 1.65, 1.50, 1.00, -1363, 0.008, -1153, 0.012,
		0.25, 0.0, 0.25, 0.0, -5.0, 5000, 250, 0.0,
	},
	EnvironmentSewerPipe: {
		1.7, 0.80, -1000, -1000, 0, 2.81, 0.14, 1.00, 429, 0.014, 1023, 0.021,
		0.25, 0.0, 0.25, 0.0, -5.0, 5000, 250, 0.0,
	},
	EnvironmentUnderwater: {
		1.8, 1.00, -1000, -4000, 0, 1.49, 0.10, 1.00, -449, 0.007, 1700, 0.011,
		0.25, 1.18, 0.25, 0.0, -5.0, 5000, 250, 0.0,
	},
	EnvironmentDrugged: {
		1.9, 0.50, -1000, 0, 0, 8.39, 1.39, 1.00, -115, 0.002, 985, 0.030,
		0.25, 1.0, 0.25, 0.0, -5.0, 5000, 250, 0.0,
	},
	EnvironmentDizzy: {
		1.8, 0.60, -1000, -400, 0, 17.23, 0.56, 1.00, -1713, 0.020, -613, 0.030,
		0.25, 1.0, 0.81, 0.31, -5.0, 5000, 250, 0.0,
	},
	EnvironmentPsychotic: {
		1.0, 0.50, -1000, -151, 0, 7.56, 0.91, 1.00, -626, 0.020, 774, 0.030,
		0.25, 0.0, 4.0, 1.0, -5.0, 5000, 250, 0.0,
	},
}

var environmentNames = [environmentUndefined]string{
	EnvironmentGeneric:         "Generic",
	EnvironmentPaddedCell:      "PaddedCell",
	EnvironmentRoom:            "Room",
	EnvironmentBathroom:        "Bathroom",
	EnvironmentLivingRoom:      "LivingRoom",
	EnvironmentStoneRoom:       "StoneRoom",
	EnvironmentAuditorium:      "Auditorium",
	EnvironmentConcertHall:     "ConcertHall",
	EnvironmentCave:            "Cave",
	EnvironmentArena:           "Arena",
	EnvironmentHangar:          "Hangar",
	EnvironmentCarpetedHallway: "CarpetedHallway",
	EnvironmentHallway:         "Hallway",
	EnvironmentStoneCorridor:   "StoneCorridor",
	EnvironmentAlley:           "Alley",
	EnvironmentForest:          "Forest",
	EnvironmentCity:            "City",
	EnvironmentMountains:       "Mountains",
	EnvironmentQuarry:          "Quarry",
	EnvironmentPlain:           "Plain",
	EnvironmentParkingLot:      "ParkingLot",
	EnvironmentSewerPipe:       "SewerPipe",
	EnvironmentUnderwater:      "Underwater",
	EnvironmentDrugged:         "Drugged",
	EnvironmentDizzy:           "Dizzy",
	EnvironmentPsychotic:       "Psychotic",
}

// EnvironmentCount reports how many named presets exist. On a v4/v5 call
// ENVIRONMENT accepts [0, EnvironmentCount()]: the top index is
// UNDEFINED, which has no preset (see reverbMaxEnvironmentForVersion).
func EnvironmentCount() uint32 { return environmentUndefined }

// EnvironmentName returns the preset name for i, or "" if i does not
// name a known preset.
func EnvironmentName(i uint32) string {
	if i >= environmentUndefined {
		return ""
	}
	return environmentNames[i]
}
