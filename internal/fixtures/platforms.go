package fixtures

import "strings"

// platform holds the authored metadata for one fixture key. Zero counts
// mean "no override".
type platform struct {
	Name          string
	CategoryID    string
	GameCount     int
	DownloadCount int64
}

var platforms = map[string]platform{
	"3do":                       {Name: "3DO", GameCount: 17, DownloadCount: 17572},
	"3ds":                       {Name: "3DS", CategoryID: "nintendo-3ds-roms", GameCount: 117, DownloadCount: 3199342},
	"acorn_archimedes":          {Name: "Acorn Archimedes", GameCount: 155, DownloadCount: 11087},
	"acorn_atom":                {Name: "Acorn Atom", GameCount: 36, DownloadCount: 3509},
	"action_max":                {Name: "Action Max", GameCount: 5, DownloadCount: 2995},
	"amiga":                     {Name: "Amiga", GameCount: 3185, DownloadCount: 268800},
	"amstrad_cpc":               {Name: "Amstrad CPC", GameCount: 4938, DownloadCount: 290142},
	"amstrad_gx4000":            {Name: "Amstrad GX4000", GameCount: 19, DownloadCount: 4658},
	"apple_2":                   {Name: "Apple II", GameCount: 103, DownloadCount: 8971},
	"apple_2_gs":                {Name: "Apple IIgs", GameCount: 16, DownloadCount: 2764},
	"atari_2600":                {Name: "Atari 2600", GameCount: 440, DownloadCount: 82556},
	"atari_5200":                {Name: "Atari 5200", GameCount: 93, DownloadCount: 15454},
	"atari_7800":                {Name: "Atari 7800", GameCount: 59, DownloadCount: 13238},
	"atari_8_bit":               {Name: "Atari 8-bit", GameCount: 18, DownloadCount: 5986},
	"atari_jaguar":              {Name: "Atari Jaguar", GameCount: 56, DownloadCount: 14095},
	"atari_lynx":                {Name: "Atari Lynx", GameCount: 85, DownloadCount: 15555},
	"atari_st":                  {Name: "Atari ST", GameCount: 2817, DownloadCount: 186536},
	"bally_astrocade":           {Name: "Bally Astrocade"},
	"bbc_micro":                 {Name: "BBC Micro", GameCount: 1027, DownloadCount: 57832},
	"capcom_play_system_1":      {Name: "Capcom Play System 1", GameCount: 100, DownloadCount: 45741},
	"cd_i":                      {Name: "CD-i", GameCount: 46, DownloadCount: 33824},
	"colecovision":              {Name: "ColecoVision", GameCount: 302, DownloadCount: 23815},
	"commodore_64_preservation": {Name: "Commodore 64", GameCount: 96, DownloadCount: 11773},
	"commodore_64_tapes":        {Name: "Commodore 64 Tapes", GameCount: 100, DownloadCount: 9508},
	"commodore_vic_20":          {Name: "Commodore VIC-20", GameCount: 22, DownloadCount: 5092},
	"cps2":                      {Name: "Capcom Play System 2", GameCount: 100, DownloadCount: 32492},
	"cps3":                      {Name: "Capcom Play System 3", GameCount: 6, DownloadCount: 13645},
	"dos":                       {Name: "DOS", GameCount: 4110, DownloadCount: 289487},
	"famicom":                   {Name: "Famicom", GameCount: 100, DownloadCount: 18100},
	"fm_7":                      {Name: "FM-7"},
	"gamate":                    {Name: "Gamate", GameCount: 58, DownloadCount: 4868},
	"gameboy":                   {Name: "Game Boy", CategoryID: "gameboy-roms", GameCount: 574, DownloadCount: 197872},
	"gameboy_color":             {Name: "Game Boy Color", CategoryID: "gameboy-color-roms", GameCount: 926, DownloadCount: 609353},
	"gamecube":                  {Name: "GameCube", CategoryID: "nintendo-gamecube-roms", GameCount: 239, DownloadCount: 2217746},
	"gba":                       {Name: "Game Boy Advance", CategoryID: "gameboy-advance-roms", GameCount: 2046, DownloadCount: 6930074},
	"gce_vectrex":               {Name: "GCE Vectrex", GameCount: 174, DownloadCount: 15932},
	"intellivision":             {Name: "Intellivision", GameCount: 233, DownloadCount: 24147},
	"magnavox_odissey_2":        {Name: "Magnavox Odyssey²", GameCount: 23, DownloadCount: 4591},
	"mame":                      {Name: "Arcade (MAME)", CategoryID: "arcade-mame-roms", GameCount: 1234, DownloadCount: 1830746},
	"msx":                       {Name: "MSX", GameCount: 602, DownloadCount: 53251},
	"msx_2":                     {Name: "MSX2", GameCount: 163, DownloadCount: 18370},
	"n64":                       {Name: "Nintendo 64", CategoryID: "nintendo-64-roms", GameCount: 877, DownloadCount: 1625508},
	"n_gage":                    {Name: "N-Gage", GameCount: 18, DownloadCount: 18836},
	"nds":                       {Name: "Nintendo DS", CategoryID: "nintendo-ds-roms", GameCount: 2123, DownloadCount: 3811847},
	"neo_geo_pocket":            {Name: "Neo Geo Pocket", GameCount: 77, DownloadCount: 15285},
	"nes":                       {Name: "Nintendo Entertainment System", CategoryID: "nintendo-roms", GameCount: 1146, DownloadCount: 1024524},
	"new_geo":                   {Name: "Neo Geo", GameCount: 206, DownloadCount: 213207},
	"nintendo_wii_u":            {Name: "Nintendo Wii U", CategoryID: "nintendo-wii-u-roms", GameCount: 8, DownloadCount: 81622},
	"pc_fx":                     {Name: "PC-FX", GameCount: 20, DownloadCount: 7319},
	"playstation":               {Name: "PlayStation", CategoryID: "playstation-roms", GameCount: 339, DownloadCount: 1328110},
	"playstation_4":             {Name: "PlayStation 4", CategoryID: "playstation-4-roms", GameCount: 2, DownloadCount: 12946},
	"playstation_vita":          {Name: "PlayStation Vita", CategoryID: "playstation-vita-roms", GameCount: 2, DownloadCount: 12979},
	"pokemon_mini":              {Name: "Pokémon Mini", GameCount: 15, DownloadCount: 9670},
	"ps2":                       {Name: "PlayStation 2", CategoryID: "playstation-2-roms", GameCount: 288, DownloadCount: 7768966},
	"ps3":                       {Name: "PlayStation 3", CategoryID: "playstation-3-roms", GameCount: 41, DownloadCount: 2049626},
	"psp":                       {Name: "PlayStation Portable", CategoryID: "playstation-portable-roms", GameCount: 787, DownloadCount: 21871621},
	"sam_coupe":                 {Name: "SAM Coupé", GameCount: 139, DownloadCount: 10189},
	"satellaview":               {Name: "Satellaview", GameCount: 242, DownloadCount: 24178},
	"scummvm":                   {Name: "ScummVM", GameCount: 16, DownloadCount: 17257},
	"sega_32x":                  {Name: "Sega 32X", GameCount: 55, DownloadCount: 23920},
	"sega_cd":                   {Name: "Sega CD", GameCount: 103, DownloadCount: 209624},
	"sega_dreamcast":            {Name: "Sega Dreamcast", GameCount: 114, DownloadCount: 298690},
	"sega_game_gear":            {Name: "Sega Game Gear", GameCount: 326, DownloadCount: 70312},
	"sega_genesis":              {Name: "Sega Genesis", GameCount: 1026, DownloadCount: 472446},
	"sega_master_system":        {Name: "Sega Master System", GameCount: 368, DownloadCount: 65278},
	"sega_naomi":                {Name: "Sega Naomi", GameCount: 71, DownloadCount: 93595},
	"sega_pico":                 {Name: "Sega Pico", GameCount: 332, DownloadCount: 25339},
	"sega_saturn":               {Name: "Sega Saturn", GameCount: 103, DownloadCount: 112919},
	"sg_1000":                   {Name: "SG-1000", GameCount: 16, DownloadCount: 2561},
	"sharp":                     {Name: "Sharp", GameCount: 2866, DownloadCount: 182908},
	"snes":                      {Name: "Super Nintendo Entertainment System", CategoryID: "super-nintendo-roms", GameCount: 1429, DownloadCount: 1533725},
	"super_cassette_vision":     {Name: "Super Cassette Vision", GameCount: 19, DownloadCount: 2808},
	"switch":                    {Name: "Nintendo Switch", CategoryID: "nintendo-switch-roms", GameCount: 9, DownloadCount: 766031},
	"tandy_trs_80":              {Name: "Tandy TRS-80", GameCount: 655, DownloadCount: 37969},
	"tatung_einstein":           {Name: "Tatung Einstein", GameCount: 51, DownloadCount: 3385},
	"tiger_game_com":            {Name: "Tiger Game.com", GameCount: 17, DownloadCount: 4851},
	"trs_80_color_computer":     {Name: "TRS-80 Color Computer", GameCount: 73, DownloadCount: 5401},
	"turbo_duo":                 {Name: "TurboGrafx-16/PC Engine", GameCount: 16, DownloadCount: 3990},
	"turbografx16":              {Name: "TurboGrafx-16", GameCount: 103, DownloadCount: 46977},
	"videopac_g7400":            {Name: "Videopac+ G7400", GameCount: 34, DownloadCount: 4156},
	"virtual_boy":               {Name: "Virtual Boy", GameCount: 17, DownloadCount: 9120},
	"watara_supervision":        {Name: "Watara Supervision"},
	"wii":                       {Name: "Nintendo Wii", CategoryID: "nintendo-wii-roms", GameCount: 91, DownloadCount: 2320853},
	"wonderswan":                {Name: "WonderSwan", GameCount: 123, DownloadCount: 11461},
	"wonderswan_color":          {Name: "WonderSwan Color", GameCount: 96, DownloadCount: 11475},
	"xbox":                      {Name: "Xbox", CategoryID: "microsoft-xbox-roms", GameCount: 24, DownloadCount: 253893},
	"xbox_one":                  {Name: "Xbox One", CategoryID: "microsoft-xbox-one-roms", GameCount: 3, DownloadCount: 22087},
	"z_machine":                 {Name: "Z-Machine"},
	"zx81":                      {Name: "ZX81"},
	"zx_spectrum":               {Name: "ZX Spectrum", GameCount: 5847, DownloadCount: 386624},
}

// DisplayName maps a fixture key such as "n64" to "Nintendo 64". Unknown
// keys are uppercased.
func DisplayName(key string) string {
	if p, ok := platforms[key]; ok {
		return p.Name
	}
	return strings.ToUpper(key)
}

// CategoryID maps a fixture key to its category identifier, falling back
// to "<key with hyphens>-roms".
func CategoryID(key string) string {
	if p, ok := platforms[key]; ok && p.CategoryID != "" {
		return p.CategoryID
	}
	return strings.ReplaceAll(key, "_", "-") + "-roms"
}

// IsKnownPlatform reports whether key has an authored table entry.
func IsKnownPlatform(key string) bool {
	_, ok := platforms[key]
	return ok
}

func gameCountOverride(key string) int {
	return platforms[key].GameCount
}

func downloadCountOverride(key string) int64 {
	return platforms[key].DownloadCount
}
