package validation

// AngolaProvinces lists the provinces accepted for profiles, companies
// and listings.
var AngolaProvinces = []string{
	"Bengo", "Benguela", "Bié", "Cabinda", "Cuando Cubango",
	"Cuanza Norte", "Cuanza Sul", "Cunene", "Huambo", "Huíla",
	"Luanda", "Lunda Norte", "Lunda Sul", "Malanje", "Moxico",
	"Namibe", "Uíge", "Zaire",
}

// AngolaMunicipalities maps each province to its municipalities.
var AngolaMunicipalities = map[string][]string{
	"Bengo":          {"Ambriz", "Bula Atumba", "Dande", "Dembos", "Nambuangongo", "Pango Aluquém"},
	"Benguela":       {"Baía Farta", "Balombo", "Benguela", "Bocoio", "Caimbambo", "Catumbela", "Chongoroi", "Cubal", "Ganda", "Lobito"},
	"Bié":            {"Andulo", "Camacupa", "Catabola", "Chinguar", "Chitembo", "Cuemba", "Cunhinga", "Cuíto", "Nharea"},
	"Cabinda":        {"Belize", "Buco-Zau", "Cabinda", "Cacongo"},
	"Cuando Cubango": {"Calai", "Cuangar", "Cuchi", "Cuito Cuanavale", "Dirico", "Mavinga", "Menongue", "Nancova", "Rivungo"},
	"Cuanza Norte":   {"Ambaca", "Banga", "Bolongongo", "Cambambe", "Cazengo", "Golungo Alto", "Gonguembo", "Lucala", "Quiculungo", "Samba Caju"},
	"Cuanza Sul":     {"Amboim", "Cassongue", "Cela", "Conda", "Ebo", "Libolo", "Mussende", "Porto Amboim", "Quibala", "Quilenda", "Seles", "Sumbe"},
	"Cunene":         {"Cahama", "Cuanhama", "Curoca", "Cuvelai", "Namacunde", "Ombadja"},
	"Huambo":         {"Bailundo", "Caála", "Catchiungo", "Chicala-Choloanga", "Chinjenje", "Ecunha", "Huambo", "Londuimbali", "Longonjo", "Mungo", "Ucuma"},
	"Huíla":          {"Caconda", "Cacula", "Caluquembe", "Chiange", "Chibia", "Chicomba", "Chipindo", "Cuvango", "Humpata", "Jamba", "Lubango", "Matala", "Quilengues", "Quipungo"},
	"Luanda":         {"Belas", "Cacuaco", "Cazenga", "Ícolo e Bengo", "Luanda", "Quiçama", "Talatona", "Viana", "Kilamba Kiaxi"},
	"Lunda Norte":    {"Cambulo", "Capenda-Camulemba", "Caungula", "Chitato", "Cuango", "Cuilo", "Lóvua", "Lubalo", "Lucapa", "Xá-Muteba"},
	"Lunda Sul":      {"Cacolo", "Dala", "Muconda", "Saurimo"},
	"Malanje":        {"Cacuso", "Calandula", "Cambundi-Catembo", "Cangandala", "Caombo", "Cuaba Nzogo", "Cunda-Dia-Baza", "Luquembo", "Malanje", "Marimba", "Massango", "Mucari", "Quela", "Quirima"},
	"Moxico":         {"Alto Zambeze", "Bundas", "Camanongue", "Léua", "Luacano", "Luau", "Luchazes", "Cameia", "Moxico"},
	"Namibe":         {"Bibala", "Camacuio", "Moçâmedes", "Tômbua", "Virei"},
	"Uíge":           {"Alto Cauale", "Ambuíla", "Bembe", "Buengas", "Bungo", "Damba", "Maquela do Zombo", "Milunga", "Mucaba", "Negage", "Puri", "Quimbele", "Quitexe", "Songo", "Uíge"},
	"Zaire":          {"Cuimba", "M'Banza Kongo", "Noqui", "N'Zeto", "Soyo", "Tomboco"},
}
