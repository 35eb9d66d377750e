// Package catalogdata holds the static character dataset. The catalog is a
// fixed roster of three worlds with six characters each.
package catalogdata

import catalogdomain "github.com/Clone-Wars-Club/arena-bot/app/modules/catalog/domain"

// Worlds is the full world list, keyed by world id.
var Worlds = map[int]catalogdomain.World{
	1: {ID: 1, Name: "Kamino", ImageURL: "https://static.wikia.nocookie.net/es.starwars/images/5/52/Kamino-TSWB.png"},
	2: {ID: 2, Name: "Coruscant", ImageURL: "https://static.wikia.nocookie.net/es.starwars/images/e/e1/Coruscant_Enciclopedia.png"},
	3: {ID: 3, Name: "Naboo", ImageURL: "https://static.wikia.nocookie.net/es.starwars/images/0/06/Naboo_Enciclopedia.png"},
}

// Characters is the full character roster, ordered by world then faction.
var Characters = []catalogdomain.Character{
	{ID: "obi", Name: "Obi-Wan Kenobi", Faction: catalogdomain.FactionHero, WorldID: 1, Stats: catalogdomain.Stats{Damage: 80, Defense: 90, SpecialPower: 150}, ImageURL: "https://static.wikia.nocookie.net/es.starwars/images/3/30/Obi-Wan_Kenobi_Kenobi_series.png"},
	{ID: "cody", Name: "Commander Cody", Faction: catalogdomain.FactionHero, WorldID: 1, Stats: catalogdomain.Stats{Damage: 70, Defense: 80, SpecialPower: 120}, ImageURL: "https://static.wikia.nocookie.net/es.starwars/images/2/29/Cody_S3.png"},
	{ID: "shaak", Name: "Shaak Ti", Faction: catalogdomain.FactionHero, WorldID: 1, Stats: catalogdomain.Stats{Damage: 75, Defense: 85, SpecialPower: 140}, ImageURL: "https://static.wikia.nocookie.net/es.starwars/images/e/e3/Shaak_Ti_sin_sable.png"},
	{ID: "jango", Name: "Jango Fett", Faction: catalogdomain.FactionVillain, WorldID: 1, Stats: catalogdomain.Stats{Damage: 90, Defense: 70, SpecialPower: 160}, ImageURL: "https://static.wikia.nocookie.net/es.starwars/images/6/6e/Jango_Fett_BD.png"},
	{ID: "taun", Name: "Taun We", Faction: catalogdomain.FactionVillain, WorldID: 1, Stats: catalogdomain.Stats{Damage: 30, Defense: 50, SpecialPower: 60}, ImageURL: "https://static.wikia.nocookie.net/es.starwars/images/3/36/Taun_We_TBB.png"},
	{ID: "lama", Name: "Lama Su", Faction: catalogdomain.FactionVillain, WorldID: 1, Stats: catalogdomain.Stats{Damage: 20, Defense: 40, SpecialPower: 50}, ImageURL: "https://static.wikia.nocookie.net/es.starwars/images/a/a9/Lama_Su_TBB.png"},

	{ID: "anakin", Name: "Anakin Skywalker", Faction: catalogdomain.FactionHero, WorldID: 2, Stats: catalogdomain.Stats{Damage: 90, Defense: 80, SpecialPower: 170}, ImageURL: "https://static.wikia.nocookie.net/es.starwars/images/c/c6/Anakin_Skywalker_perfil.png"},
	{ID: "yoda", Name: "Yoda", Faction: catalogdomain.FactionHero, WorldID: 2, Stats: catalogdomain.Stats{Damage: 70, Defense: 95, SpecialPower: 180}, ImageURL: "https://static.wikia.nocookie.net/es.starwars/images/1/1d/Yoda_en_su_silla.png"},
	{ID: "padme", Name: "Padmé Amidala", Faction: catalogdomain.FactionHero, WorldID: 2, Stats: catalogdomain.Stats{Damage: 60, Defense: 60, SpecialPower: 110}, ImageURL: "https://static.wikia.nocookie.net/es.starwars/images/a/a2/Padme_Amidala_perfil.png"},
	{ID: "palpatine", Name: "Palpatine", Faction: catalogdomain.FactionVillain, WorldID: 2, Stats: catalogdomain.Stats{Damage: 80, Defense: 80, SpecialPower: 200}, ImageURL: "https://static.wikia.nocookie.net/es.starwars/images/6/68/Palpatine_sith.png"},
	{ID: "cad", Name: "Cad Bane", Faction: catalogdomain.FactionVillain, WorldID: 2, Stats: catalogdomain.Stats{Damage: 85, Defense: 60, SpecialPower: 150}, ImageURL: "https://static.wikia.nocookie.net/es.starwars/images/c/c5/Cad_Bane_TBB_Perfil.png"},
	{ID: "mas", Name: "Mas Amedda", Faction: catalogdomain.FactionVillain, WorldID: 2, Stats: catalogdomain.Stats{Damage: 10, Defense: 30, SpecialPower: 20}, ImageURL: "https://static.wikia.nocookie.net/es.starwars/images/d/d5/Mas_Amedda_SWE.png"},

	{ID: "quigon", Name: "Qui-Gon Jinn", Faction: catalogdomain.FactionHero, WorldID: 3, Stats: catalogdomain.Stats{Damage: 75, Defense: 85, SpecialPower: 145}, ImageURL: "https://static.wikia.nocookie.net/es.starwars/images/7/7e/Qui-Gon_Jinn_perfil.png"},
	{ID: "jarjar", Name: "Jar Jar Binks", Faction: catalogdomain.FactionHero, WorldID: 3, Stats: catalogdomain.Stats{Damage: 50, Defense: 70, SpecialPower: 100}, ImageURL: "https://static.wikia.nocookie.net/es.starwars/images/8/8f/Jar_Jar_Binks_perfil.png"},
	{ID: "nass", Name: "Boss Nass", Faction: catalogdomain.FactionHero, WorldID: 3, Stats: catalogdomain.Stats{Damage: 40, Defense: 60, SpecialPower: 70}, ImageURL: "https://static.wikia.nocookie.net/es.starwars/images/f/f3/BossNass-TatooineTrip.png"},
	{ID: "maul", Name: "Darth Maul", Faction: catalogdomain.FactionVillain, WorldID: 3, Stats: catalogdomain.Stats{Damage: 95, Defense: 75, SpecialPower: 175}, ImageURL: "https://static.wikia.nocookie.net/es.starwars/images/b/b2/Darth_Maul_perfil.png"},
	{ID: "nute", Name: "Nute Gunray", Faction: catalogdomain.FactionVillain, WorldID: 3, Stats: catalogdomain.Stats{Damage: 20, Defense: 40, SpecialPower: 30}, ImageURL: "https://static.wikia.nocookie.net/es.starwars/images/b/b0/Nute_Gunray_perfil.png"},
	{ID: "droide", Name: "Battle Droid", Faction: catalogdomain.FactionVillain, WorldID: 3, Stats: catalogdomain.Stats{Damage: 50, Defense: 30, SpecialPower: 50}, ImageURL: "https://static.wikia.nocookie.net/es.starwars/images/9/9b/B1_batdroid.png"},
}
