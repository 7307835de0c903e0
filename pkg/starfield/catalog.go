package starfield

// catalogEntry is the compact source form of the built-in catalog.
type catalogEntry struct {
	name  string
	ra    float64 // degrees, J2000
	dec   float64 // degrees, J2000
	mag   float64
	class byte
}

// brightStars lists naked-eye stars with their spectral classes, ordered
// roughly by magnitude. Coordinates are J2000, sourced from the Yale
// Bright Star Catalog.
var brightStars = []catalogEntry{
	{"Sirius", 101.287, -16.716, -1.46, 'A'},
	{"Canopus", 95.988, -52.696, -0.74, 'F'},
	{"Arcturus", 213.915, 19.182, -0.05, 'K'},
	{"Vega", 279.235, 38.784, 0.03, 'A'},
	{"Capella", 79.172, 45.998, 0.08, 'G'},
	{"Rigel", 78.634, -8.202, 0.13, 'B'},
	{"Procyon", 114.826, 5.225, 0.34, 'F'},
	{"Achernar", 24.429, -57.237, 0.46, 'B'},
	{"Betelgeuse", 88.793, 7.407, 0.50, 'M'},
	{"Hadar", 210.956, -60.373, 0.61, 'B'},
	{"Altair", 297.696, 8.868, 0.76, 'A'},
	{"Acrux", 186.650, -63.099, 0.76, 'B'},
	{"Aldebaran", 68.980, 16.509, 0.85, 'K'},
	{"Antares", 247.352, -26.432, 0.96, 'M'},
	{"Spica", 201.298, -11.161, 0.97, 'B'},
	{"Pollux", 116.329, 28.026, 1.14, 'K'},
	{"Fomalhaut", 344.413, -29.622, 1.16, 'A'},
	{"Deneb", 310.358, 45.280, 1.25, 'A'},
	{"Mimosa", 191.930, -59.689, 1.25, 'B'},
	{"Regulus", 152.093, 11.967, 1.35, 'B'},
	{"Adhara", 104.656, -28.972, 1.50, 'B'},
	{"Castor", 113.650, 31.889, 1.58, 'A'},
	{"Gacrux", 187.791, -57.113, 1.63, 'M'},
	{"Shaula", 263.402, -37.104, 1.63, 'B'},
	{"Bellatrix", 81.283, 6.350, 1.64, 'B'},
	{"Elnath", 81.573, 28.608, 1.65, 'B'},
	{"Miaplacidus", 138.300, -69.717, 1.68, 'A'},
	{"Alnilam", 84.053, -1.202, 1.69, 'B'},
	{"Alnair", 332.058, -46.961, 1.74, 'B'},
	{"Alnitak", 85.190, -1.943, 1.77, 'O'},
	{"Alioth", 193.507, 55.960, 1.77, 'A'},
	{"Dubhe", 165.932, 61.751, 1.79, 'K'},
	{"Mirfak", 51.081, 49.861, 1.79, 'F'},
	{"Wezen", 107.098, -26.393, 1.84, 'F'},
	{"Kaus Australis", 276.043, -34.384, 1.85, 'B'},
	{"Avior", 125.629, -59.509, 1.86, 'K'},
	{"Alkaid", 206.885, 49.313, 1.86, 'B'},
	{"Sargas", 264.330, -42.998, 1.87, 'F'},
	{"Menkalinan", 89.882, 44.948, 1.90, 'A'},
	{"Atria", 252.166, -69.028, 1.92, 'K'},
	{"Alhena", 99.428, 16.399, 1.93, 'A'},
	{"Peacock", 306.412, -56.735, 1.94, 'B'},
	{"Alsephina", 131.176, -54.709, 1.96, 'A'},
	{"Mirzam", 95.675, -17.956, 1.98, 'B'},
	{"Alphard", 141.897, -8.659, 2.00, 'K'},
	{"Hamal", 31.793, 23.463, 2.00, 'K'},
	{"Polaris", 37.954, 89.264, 2.02, 'F'},
	{"Diphda", 10.897, -17.987, 2.02, 'K'},
	{"Nunki", 283.816, -26.297, 2.02, 'B'},
	{"Mizar", 200.981, 54.925, 2.04, 'A'},
	{"Alpheratz", 2.097, 29.091, 2.06, 'B'},
	{"Mirach", 17.433, 35.621, 2.05, 'M'},
	{"Kochab", 222.676, 74.156, 2.08, 'K'},
	{"Rasalhague", 263.734, 12.560, 2.08, 'A'},
	{"Algieba", 146.463, 19.842, 2.08, 'K'},
	{"Saiph", 86.939, -9.670, 2.09, 'B'},
	{"Algol", 47.042, 40.957, 2.12, 'B'},
	{"Denebola", 177.265, 14.572, 2.13, 'A'},
	{"Muhlifain", 190.379, -48.960, 2.17, 'A'},
	{"Suhail", 136.999, -43.433, 2.21, 'K'},
	{"Alphecca", 233.672, 26.715, 2.23, 'A'},
	{"Mintaka", 83.002, -0.299, 2.23, 'O'},
	{"Sadr", 305.557, 40.257, 2.23, 'F'},
	{"Eltanin", 269.152, 51.489, 2.23, 'K'},
	{"Schedar", 10.127, 56.537, 2.23, 'K'},
	{"Naos", 120.896, -40.003, 2.25, 'O'},
	{"Aspidiske", 139.273, -59.275, 2.25, 'A'},
	{"Caph", 2.295, 59.150, 2.27, 'F'},
	{"Larawag", 254.655, -34.293, 2.29, 'K'},
	{"Dschubba", 240.083, -22.622, 2.32, 'B'},
	{"Merak", 165.460, 56.382, 2.37, 'A'},
	{"Izar", 221.247, 27.074, 2.37, 'K'},
	{"Enif", 326.046, 9.875, 2.39, 'K'},
	{"Ankaa", 6.571, -42.306, 2.38, 'K'},
	{"Girtab", 265.622, -39.030, 2.41, 'F'},
	{"Scheat", 345.944, 28.083, 2.42, 'M'},
	{"Sabik", 257.595, -15.725, 2.43, 'A'},
	{"Phecda", 178.458, 53.695, 2.44, 'A'},
	{"Aludra", 111.024, -29.303, 2.45, 'B'},
	{"Markeb", 140.528, -55.011, 2.47, 'B'},
	{"Navi", 14.177, 60.717, 2.47, 'B'},
	{"Markab", 346.190, 15.205, 2.49, 'B'},
	{"Aljanah", 311.553, 33.970, 2.48, 'K'},
	{"Alderamin", 319.645, 62.586, 2.51, 'A'},
	{"Zosma", 168.527, 20.524, 2.56, 'A'},
	{"Arneb", 83.183, -17.822, 2.58, 'F'},
	{"Gienah", 183.952, -17.542, 2.59, 'B'},
	{"Zubeneschamali", 229.252, -9.383, 2.61, 'B'},
	{"Acrab", 241.359, -19.805, 2.62, 'B'},
	{"Phact", 84.912, -34.074, 2.64, 'B'},
	{"Sheratan", 28.660, 20.808, 2.64, 'A'},
	{"Unukalhai", 236.067, 6.426, 2.65, 'K'},
	{"Kraz", 188.597, -23.397, 2.65, 'G'},
	{"Hassaleh", 75.492, 33.166, 2.69, 'K'},
	{"Tarazed", 296.565, 10.613, 2.72, 'K'},
	{"Porrima", 190.415, -1.449, 2.74, 'F'},
	{"Zubenelgenubi", 222.720, -16.042, 2.75, 'A'},
	{"Yed Prior", 243.586, -3.694, 2.75, 'M'},
	{"Cursa", 76.963, -5.086, 2.79, 'A'},
	{"Rastaban", 262.608, 52.301, 2.79, 'G'},
	{"Nihal", 82.061, -20.759, 2.84, 'G'},
	{"Alcyone", 56.871, 24.105, 2.87, 'B'},
	{"Tejat", 95.740, 22.513, 2.88, 'M'},
	{"Gomeisa", 111.788, 8.289, 2.90, 'B'},
	{"Sadalsuud", 322.890, -5.571, 2.91, 'G'},
	{"Minkar", 182.531, -22.620, 3.02, 'K'},
	{"Sadalmelik", 331.446, -0.320, 2.96, 'G'},
	{"Pherkad", 230.182, 71.834, 3.00, 'A'},
	{"Hoedus I", 75.620, 41.234, 3.04, 'K'},
	{"Tania Australis", 155.582, 41.499, 3.05, 'M'},
	{"Mebsuta", 100.983, 25.131, 3.06, 'G'},
	{"Talitha", 134.802, 48.042, 3.14, 'A'},
	{"Hoedus II", 75.248, 41.076, 3.17, 'A'},
	{"Aldhibah", 256.343, 65.715, 3.17, 'B'},
	{"Albireo", 292.680, 27.960, 3.18, 'K'},
	{"Propus", 93.719, 22.506, 3.28, 'M'},
	{"Edasich", 231.232, 58.966, 3.29, 'K'},
	{"Megrez", 183.857, 57.033, 3.31, 'A'},
	{"Chertan", 168.560, 15.430, 3.33, 'A'},
	{"Muscida", 127.566, 60.718, 3.35, 'G'},
	{"Auva", 192.855, 3.397, 3.38, 'M'},
	{"Adhafera", 154.173, 23.417, 3.43, 'F'},
	{"Tania Borealis", 154.274, 42.914, 3.45, 'A'},
	{"Alula Borealis", 169.620, 33.094, 3.49, 'K'},
	{"Subra", 148.191, 9.893, 3.52, 'A'},
	{"Wasat", 110.031, 21.982, 3.53, 'F'},
	{"Chi Dra", 274.966, 72.733, 3.57, 'F'},
	{"Zavijava", 177.674, 1.765, 3.61, 'F'},
	{"Thuban", 211.097, 64.376, 3.65, 'A'},
	{"Saclateni", 79.402, 40.010, 3.69, 'K'},
	{"Alshain", 298.828, 6.407, 3.71, 'G'},
	{"Grumium", 268.382, 56.873, 3.75, 'K'},
	{"Alula Australis", 169.545, 31.529, 3.78, 'G'},
	{"Epsilon Dra", 297.043, 70.268, 3.83, 'G'},
	{"Giausar", 175.942, 69.331, 3.85, 'M'},
	{"Rasalas", 146.463, 26.007, 3.88, 'K'},
	{"Zaniah", 184.976, -0.667, 3.89, 'A'},
	{"Asellus Australis", 131.171, 18.154, 3.94, 'K'},
	{"Furud", 95.078, -30.063, 3.96, 'B'},
	{"Alcor", 201.306, 54.988, 3.99, 'A'},
	{"Tyl", 288.439, 67.661, 4.01, 'G'},
	{"Alkes", 164.944, -18.299, 4.08, 'K'},
	{"Muliphein", 105.940, -15.633, 4.11, 'B'},
	{"Acubens", 134.622, 11.858, 4.25, 'A'},
	{"Chara", 188.436, 41.357, 4.26, 'G'},
	{"Alterf", 139.711, 22.968, 4.31, 'K'},
	{"Diadem", 197.497, 17.529, 4.32, 'F'},
	{"Yildun", 263.054, 86.586, 4.36, 'A'},
	{"Sceptrum", 62.966, -8.898, 4.45, 'K'},
	{"Dziban", 270.162, 72.149, 4.54, 'F'},
	{"Asellus Borealis", 130.821, 21.469, 4.66, 'A'},
	{"Alrakis", 245.998, 61.514, 4.67, 'F'},
	{"Alsafi", 282.520, 52.301, 4.67, 'K'},
}

// DefaultCatalog converts the built-in bright-star list to index entries.
func DefaultCatalog() []Star {
	stars := make([]Star, len(brightStars))
	for i, e := range brightStars {
		stars[i] = NewStar(e.ra, e.dec, e.mag, e.class)
	}
	return stars
}

// DefaultIndex builds an index over the built-in catalog.
func DefaultIndex() *Index {
	return BuildIndex(DefaultCatalog())
}
