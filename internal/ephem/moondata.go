package ephem

// moonTerm is one periodic term of the lunar longitude/latitude/parallax
// expansion. cl, cs, cg, cp are the coefficients applied to longitude (DLAM),
// the latitude intermediary DS, GAM1C and the sine parallax SINPI; p, q, r, s
// are integer multiples of the fundamental arguments l, l', F, D.
type moonTerm struct {
	cl, cs, cg, cp float64
	p, q, r, s     int
}

// moonSolarTerms are the solar perturbation terms of the Improved Lunar
// Ephemeris, in the order they are summed by the reference theory.
var moonSolarTerms = []moonTerm{
	{13.902, 14.06, -0.001, 0.2607, 0, 0, 0, 4},
	{0.403, -4.01, 0.394, 0.0023, 0, 0, 0, 3},
	{2369.912, 2373.36, 0.601, 28.2333, 0, 0, 0, 2},
	{-125.154, -112.79, -0.725, -0.9781, 0, 0, 0, 1},
	{1.979, 6.98, -0.445, 0.0433, 1, 0, 0, 4},
	{191.953, 192.72, 0.029, 3.0861, 1, 0, 0, 2},
	{-8.466, -13.51, 0.455, -0.1093, 1, 0, 0, 1},
	{22639.5, 22609.07, 0.079, 186.5398, 1, 0, 0, 0},
	{18.609, 3.59, -0.094, 0.0118, 1, 0, 0, -1},
	{-4586.465, -4578.13, -0.077, 34.3117, 1, 0, 0, -2},
	{3.215, 5.44, 0.192, -0.0386, 1, 0, 0, -3},
	{-38.428, -38.64, 0.001, 0.6008, 1, 0, 0, -4},
	{-0.393, -1.43, -0.092, 0.0086, 1, 0, 0, -6},
	{-0.289, -1.59, 0.123, -0.0053, 0, 1, 0, 4},
	{-24.42, -25.1, 0.04, -0.3, 0, 1, 0, 2},
	{18.023, 17.93, 0.007, 0.1494, 0, 1, 0, 1},
	{-668.146, -126.98, -1.302, -0.3997, 0, 1, 0, 0},
	{0.56, 0.32, -0.001, -0.0037, 0, 1, 0, -1},
	{-165.145, -165.06, 0.054, 1.9178, 0, 1, 0, -2},
	{-1.877, -6.46, -0.416, 0.0339, 0, 1, 0, -4},
	{0.213, 1.02, -0.074, 0.0054, 2, 0, 0, 4},
	{14.387, 14.78, -0.017, 0.2833, 2, 0, 0, 2},
	{-0.586, -1.2, 0.054, -0.01, 2, 0, 0, 1},
	{769.016, 767.96, 0.107, 10.1657, 2, 0, 0, 0},
	{1.75, 2.01, -0.018, 0.0155, 2, 0, 0, -1},
	{-211.656, -152.53, 5.679, -0.3039, 2, 0, 0, -2},
	{1.225, 0.91, -0.03, -0.0088, 2, 0, 0, -3},
	{-30.773, -34.07, -0.308, 0.3722, 2, 0, 0, -4},
	{-0.57, -1.4, -0.074, 0.0109, 2, 0, 0, -6},
	{-2.921, -11.75, 0.787, -0.0484, 1, 1, 0, 2},
	{1.267, 1.52, -0.022, 0.0164, 1, 1, 0, 1},
	{-109.673, -115.18, 0.461, -0.949, 1, 1, 0, 0},
	{-205.962, -182.36, 2.056, 1.4437, 1, 1, 0, -2},
	{0.233, 0.36, 0.012, -0.0025, 1, 1, 0, -3},
	{-4.391, -9.66, -0.471, 0.0673, 1, 1, 0, -4},
	{0.283, 1.53, -0.111, 0.006, 1, -1, 0, 4},
	{14.577, 31.7, -1.54, 0.2302, 1, -1, 0, 2},
	{147.687, 138.76, 0.679, 1.1528, 1, -1, 0, 0},
	{-1.089, 0.55, 0.021, 0.0, 1, -1, 0, -1},
	{28.475, 23.59, -0.443, -0.2257, 1, -1, 0, -2},
	{-0.276, -0.38, -0.006, -0.0036, 1, -1, 0, -3},
	{0.636, 2.27, 0.146, -0.0102, 1, -1, 0, -4},
	{-0.189, -1.68, 0.131, -0.0028, 0, 2, 0, 2},
	{-7.486, -0.66, -0.037, -0.0086, 0, 2, 0, 0},
	{-8.096, -16.35, -0.74, 0.0918, 0, 2, 0, -2},
	{-5.741, -0.04, 0.0, -0.0009, 0, 0, 2, 2},
	{0.255, 0.0, 0.0, 0.0, 0, 0, 2, 1},
	{-411.608, -0.2, 0.0, -0.0124, 0, 0, 2, 0},
	{0.584, 0.84, 0.0, 0.0071, 0, 0, 2, -1},
	{-55.173, -52.14, 0.0, -0.1052, 0, 0, 2, -2},
	{0.254, 0.25, 0.0, -0.0017, 0, 0, 2, -3},
	{0.025, -1.67, 0.0, 0.0031, 0, 0, 2, -4},
	{1.06, 2.96, -0.166, 0.0243, 3, 0, 0, 2},
	{36.124, 50.64, -1.3, 0.6215, 3, 0, 0, 0},
	{-13.193, -16.4, 0.258, -0.1187, 3, 0, 0, -2},
	{-1.187, -0.74, 0.042, 0.0074, 3, 0, 0, -4},
	{-0.293, -0.31, -0.002, 0.0046, 3, 0, 0, -6},
	{-0.29, -1.45, 0.116, -0.0051, 2, 1, 0, 2},
	{-7.649, -10.56, 0.259, -0.1038, 2, 1, 0, 0},
	{-8.627, -7.59, 0.078, -0.0192, 2, 1, 0, -2},
	{-2.74, -2.54, 0.022, 0.0324, 2, 1, 0, -4},
	{1.181, 3.32, -0.212, 0.0213, 2, -1, 0, 2},
	{9.703, 11.67, -0.151, 0.1268, 2, -1, 0, 0},
	{-0.352, -0.37, 0.001, -0.0028, 2, -1, 0, -1},
	{-2.494, -1.17, -0.003, -0.0017, 2, -1, 0, -2},
	{0.36, 0.2, -0.012, -0.0043, 2, -1, 0, -4},
	{-1.167, -1.25, 0.008, -0.0106, 1, 2, 0, 0},
	{-7.412, -6.12, 0.117, 0.0484, 1, 2, 0, -2},
	{-0.311, -0.65, -0.032, 0.0044, 1, 2, 0, -4},
	{0.757, 1.82, -0.105, 0.0112, 1, -2, 0, 2},
	{2.58, 2.32, 0.027, 0.0196, 1, -2, 0, 0},
	{2.533, 2.4, -0.014, -0.0212, 1, -2, 0, -2},
	{-0.344, -0.57, -0.025, 0.0036, 0, 3, 0, -2},
	{-0.992, -0.02, 0.0, 0.0, 1, 0, 2, 2},
	{-45.099, -0.02, 0.0, -0.001, 1, 0, 2, 0},
	{-0.179, -9.52, 0.0, -0.0833, 1, 0, 2, -2},
	{-0.301, -0.33, 0.0, 0.0014, 1, 0, 2, -4},
	{-6.382, -3.37, 0.0, -0.0481, 1, 0, -2, 2},
	{39.528, 85.13, 0.0, -0.7136, 1, 0, -2, 0},
	{9.366, 0.71, 0.0, -0.0112, 1, 0, -2, -2},
	{0.202, 0.02, 0.0, 0.0, 1, 0, -2, -4},
	{0.415, 0.1, 0.0, 0.0013, 0, 1, 2, 0},
	{-2.152, -2.26, 0.0, -0.0066, 0, 1, 2, -2},
	{-1.44, -1.3, 0.0, 0.0014, 0, 1, -2, 2},
	{0.384, -0.04, 0.0, 0.0, 0, 1, -2, -2},
	{1.938, 3.6, -0.145, 0.0401, 4, 0, 0, 0},
	{-0.952, -1.58, 0.052, -0.013, 4, 0, 0, -2},
	{-0.551, -0.94, 0.032, -0.0097, 3, 1, 0, 0},
	{-0.482, -0.57, 0.005, -0.0045, 3, 1, 0, -2},
	{0.681, 0.96, -0.026, 0.0115, 3, -1, 0, 0},
	{-0.297, -0.27, 0.002, -0.0009, 2, 2, 0, -2},
	{0.254, 0.21, -0.003, 0.0, 2, -2, 0, -2},
	{-0.25, -0.22, 0.004, 0.0014, 1, 3, 0, -2},
	{-3.996, 0.0, 0.0, 0.0004, 2, 0, 2, 0},
	{0.557, -0.75, 0.0, -0.009, 2, 0, 2, -2},
	{-0.459, -0.38, 0.0, -0.0053, 2, 0, -2, 2},
	{-1.298, 0.74, 0.0, 0.0004, 2, 0, -2, 0},
	{0.538, 1.14, 0.0, -0.0141, 2, 0, -2, -2},
	{0.263, 0.02, 0.0, 0.0, 1, 1, 2, 0},
	{0.426, 0.07, 0.0, -0.0006, 1, 1, -2, -2},
	{-0.304, 0.03, 0.0, 0.0003, 1, -1, 2, 0},
	{-0.372, -0.19, 0.0, -0.0027, 1, -1, -2, 2},
	{0.418, 0.0, 0.0, 0.0, 0, 0, 4, 0},
	{-0.33, -0.04, 0.0, 0.0, 3, 0, 2, 0},
}

// moonNTerm contributes to the N latitude correction.
type moonNTerm struct {
	coeff      float64
	p, q, r, s int
}

var moonNTerms = []moonNTerm{
	{-526.069, 0, 0, 1, -2},
	{-3.352, 0, 0, 1, -4},
	{44.297, 1, 0, 1, -2},
	{-6.0, 1, 0, 1, -4},
	{20.599, -1, 0, 1, 0},
	{-30.598, -1, 0, 1, -2},
	{-24.649, -2, 0, 1, 0},
	{-2.0, -2, 0, 1, -2},
	{-22.571, 0, 1, 1, -2},
	{10.985, 0, -1, 1, -2},
}
