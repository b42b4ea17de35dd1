package ephem

// vsopTerm is a single periodic term: amplitude, phase and frequency of
// A*cos(B + C*t) with t measured in thousands of Julian years since J2000.
type vsopTerm struct {
	a, b, c float64
}

// vsopSeries is a list of terms sharing the same power of t.
type vsopSeries []vsopTerm

// vsopFormula gives one spherical coordinate as a power series in t whose
// coefficients are trigonometric series.
type vsopFormula []vsopSeries

// vsopModel holds the three formulas (ecliptic longitude, latitude, radius)
// for one planet.
type vsopModel []vsopFormula

// vsopTable contains truncated VSOP87 models for Mercury through Neptune,
// indexed by Body value.
var vsopTable = []vsopModel{
	// Mercury
	{
		{
			{
				{4.40250710144, 0.0, 0.0}, {0.40989414977, 1.48302034195, 26087.9031415742},
				{0.050462942, 4.47785489551, 52175.8062831484}, {0.00855346844, 1.16520322459, 78263.70942472259},
				{0.00165590362, 4.11969163423, 104351.61256629678}, {0.00034561897, 0.77930768443, 130439.51570787099},
				{7.583476e-05, 3.71348404924, 156527.41884944518},
			},
			{
				{26087.90313685529, 0.0, 0.0}, {0.01131199811, 6.21874197797, 26087.9031415742},
				{0.00292242298, 3.04449355541, 52175.8062831484}, {0.00075775081, 6.08568821653, 78263.70942472259},
				{0.00019676525, 2.80965111777, 104351.61256629678},
			},
		},
		{
			{
				{0.11737528961, 1.98357498767, 26087.9031415742}, {0.02388076996, 5.03738959686, 52175.8062831484},
				{0.01222839532, 3.14159265359, 0.0}, {0.0054325181, 1.79644363964, 78263.70942472259},
				{0.0012977877, 4.83232503958, 104351.61256629678}, {0.00031866927, 1.58088495658, 130439.51570787099},
				{7.963301e-05, 4.60972126127, 156527.41884944518},
			},
			{
				{0.00274646065, 3.95008450011, 26087.9031415742}, {0.00099737713, 3.14159265359, 0.0},
			},
		},
		{
			{
				{0.39528271651, 0.0, 0.0}, {0.07834131818, 6.19233722598, 26087.9031415742},
				{0.00795525558, 2.95989690104, 52175.8062831484}, {0.00121281764, 6.01064153797, 78263.70942472259},
				{0.00021921969, 2.77820093972, 104351.61256629678}, {4.354065e-05, 5.82894543774, 130439.51570787099},
			},
			{
				{0.0021734774, 4.65617158665, 26087.9031415742}, {0.00044141826, 1.42385544001, 52175.8062831484},
			},
		},
	},
	// Venus
	{
		{
			{
				{3.17614666774, 0.0, 0.0}, {0.01353968419, 5.59313319619, 10213.285546211},
				{0.00089891645, 5.30650047764, 20426.571092422}, {5.477194e-05, 4.41630661466, 7860.4193924392},
				{3.455741e-05, 2.6996444782, 11790.6290886588}, {2.372061e-05, 2.99377542079, 3930.2096962196},
				{1.317168e-05, 5.18668228402, 26.2983197998}, {1.664146e-05, 4.25018630147, 1577.3435424478},
				{1.438387e-05, 4.15745084182, 9683.5945811164}, {1.200521e-05, 6.15357116043, 30639.856638633},
			},
			{
				{10213.28554621638, 0.0, 0.0}, {0.00095617813, 2.4640651111, 10213.285546211},
				{7.787201e-05, 0.6247848222, 20426.571092422},
			},
		},
		{
			{
				{0.05923638472, 0.26702775812, 10213.285546211}, {0.00040107978, 1.14737178112, 20426.571092422},
				{0.00032814918, 3.14159265359, 0.0},
			},
			{
				{0.00287821243, 1.88964962838, 10213.285546211},
			},
		},
		{
			{
				{0.72334820891, 0.0, 0.0}, {0.00489824182, 4.02151831717, 10213.285546211},
				{1.658058e-05, 4.90206728031, 20426.571092422},
			},
			{
				{0.00034551041, 0.89198706276, 10213.285546211},
			},
		},
	},
	// Earth
	{
		{
			{
				{1.75347045673, 0.0, 0.0}, {0.03341656453, 4.66925680415, 6283.0758499914},
				{0.00034894275, 4.62610242189, 12566.1516999828}, {3.417572e-05, 2.82886579754, 3.523118349},
				{3.497056e-05, 2.74411783405, 5753.3848848968}, {3.135899e-05, 3.62767041756, 77713.7714681205},
				{2.676218e-05, 4.41808345438, 7860.4193924392}, {2.342691e-05, 6.13516214446, 3930.2096962196},
				{1.273165e-05, 2.03709657878, 529.6909650946}, {1.324294e-05, 0.74246341673, 11506.7697697936},
				{9.01854e-06, 2.04505446477, 26.2983197998}, {1.199167e-05, 1.10962946234, 1577.3435424478},
				{8.57223e-06, 3.50849152283, 398.1490034082}, {7.79786e-06, 1.17882681962, 5223.6939198022},
				{9.9025e-06, 5.23268072088, 5884.9268465832}, {7.53141e-06, 2.53339052847, 5507.5532386674},
				{5.05267e-06, 4.58292599973, 18849.2275499742}, {4.92392e-06, 4.20505711826, 775.522611324},
				{3.56672e-06, 2.91954114478, 0.0673103028}, {2.84125e-06, 1.89869240932, 796.2980068164},
				{2.42879e-06, 0.34481445893, 5486.777843175}, {3.17087e-06, 5.84901948512, 11790.6290886588},
				{2.71112e-06, 0.31486255375, 10977.078804699}, {2.06217e-06, 4.80646631478, 2544.3144198834},
				{2.05478e-06, 1.86953770281, 5573.1428014331}, {2.02318e-06, 2.45767790232, 6069.7767545534},
				{1.26225e-06, 1.08295459501, 20.7753954924}, {1.55516e-06, 0.83306084617, 213.299095438},
			},
			{
				{6283.0758499914, 0.0, 0.0}, {0.00206058863, 2.67823455808, 6283.0758499914},
				{4.303419e-05, 2.63512233481, 12566.1516999828},
			},
			{
				{8.721859e-05, 1.07253635559, 6283.0758499914},
			},
		},
		{
			{

			},
			{
				{0.00227777722, 3.4137662053, 6283.0758499914}, {3.805678e-05, 3.37063423795, 12566.1516999828},
			},
		},
		{
			{
				{1.00013988784, 0.0, 0.0}, {0.01670699632, 3.09846350258, 6283.0758499914},
				{0.00013956024, 3.05524609456, 12566.1516999828}, {3.08372e-05, 5.19846674381, 77713.7714681205},
				{1.628463e-05, 1.17387558054, 5753.3848848968}, {1.575572e-05, 2.84685214877, 7860.4193924392},
				{9.24799e-06, 5.45292236722, 11506.7697697936}, {5.42439e-06, 4.56409151453, 3930.2096962196},
				{4.7211e-06, 3.66100022149, 5884.9268465832},
			},
			{
				{0.00103018607, 1.10748968172, 6283.0758499914}, {1.721238e-05, 1.06442300386, 12566.1516999828},
			},
			{
				{4.359385e-05, 5.78455133808, 6283.0758499914},
			},
		},
	},
	// Mars
	{
		{
			{
				{6.20347711581, 0.0, 0.0}, {0.18656368093, 5.0503710027, 3340.6124266998},
				{0.01108216816, 5.40099836344, 6681.2248533996}, {0.00091798406, 5.75478744667, 10021.8372800994},
				{0.00027744987, 5.97049513147, 3.523118349}, {0.00010610235, 2.93958560338, 2281.2304965106},
				{0.00012315897, 0.84956094002, 2810.9214616052}, {8.926784e-05, 4.15697846427, 0.0172536522},
				{8.715691e-05, 6.11005153139, 13362.4497067992}, {6.797556e-05, 0.36462229657, 398.1490034082},
				{7.774872e-05, 3.33968761376, 5621.8429232104}, {3.575078e-05, 1.6618650571, 2544.3144198834},
				{4.161108e-05, 0.22814971327, 2942.4634232916}, {3.075252e-05, 0.85696614132, 191.4482661116},
				{2.628117e-05, 0.64806124465, 3337.0893083508}, {2.937546e-05, 6.07893711402, 0.0673103028},
				{2.389414e-05, 5.03896442664, 796.2980068164}, {2.579844e-05, 0.02996736156, 3344.1355450488},
				{1.528141e-05, 1.14979301996, 6151.533888305}, {1.798806e-05, 0.65634057445, 529.6909650946},
				{1.264357e-05, 3.62275122593, 5092.1519581158}, {1.286228e-05, 3.06796065034, 2146.1654164752},
				{1.546404e-05, 2.91579701718, 1751.539531416}, {1.024902e-05, 3.69334099279, 8962.4553499102},
				{8.91566e-06, 0.18293837498, 16703.062133499}, {8.58759e-06, 2.4009381194, 2914.0142358238},
				{8.32715e-06, 2.46418619474, 3340.5951730476}, {8.3272e-06, 4.49495782139, 3340.629680352},
				{7.12902e-06, 3.66335473479, 1059.3819301892}, {7.48723e-06, 3.82248614017, 155.4203994342},
				{7.23861e-06, 0.67497311481, 3738.761430108}, {6.35548e-06, 2.92182225127, 8432.7643848156},
				{6.55162e-06, 0.48864064125, 3127.3133312618}, {5.50474e-06, 3.81001042328, 0.9803210682},
				{5.5275e-06, 4.47479317037, 1748.016413067}, {4.25966e-06, 0.55364317304, 6283.0758499914},
				{4.15131e-06, 0.49662285038, 213.299095438}, {4.72167e-06, 3.62547124025, 1194.4470102246},
				{3.06551e-06, 0.38052848348, 6684.7479717486}, {3.12141e-06, 0.99853944405, 6677.7017350506},
				{2.93198e-06, 4.22131299634, 20.7753954924}, {3.02375e-06, 4.48618007156, 3532.0606928114},
				{2.74027e-06, 0.54222167059, 3340.545116397}, {2.81079e-06, 5.88163521788, 1349.8674096588},
				{2.31183e-06, 1.28242156993, 3870.3033917944}, {2.83602e-06, 5.7688543494, 3149.1641605882},
				{2.36117e-06, 5.75503217933, 3333.498879699}, {2.74033e-06, 0.13372524985, 3340.6797370026},
				{2.99395e-06, 2.78323740866, 6254.6266625236},
			},
			{
				{3340.61242700512, 0.0, 0.0}, {0.01457554523, 3.60433733236, 3340.6124266998},
				{0.00168414711, 3.92318567804, 6681.2248533996}, {0.00020622975, 4.26108844583, 10021.8372800994},
				{3.452392e-05, 4.7321039319, 3.523118349}, {2.586332e-05, 4.60670058555, 13362.4497067992},
				{8.41535e-06, 4.45864030426, 2281.2304965106},
			},
			{
				{0.00058152577, 2.04961712429, 3340.6124266998}, {0.00013459579, 2.45738706163, 6681.2248533996},
			},
		},
		{
			{
				{0.03197134986, 3.76832042431, 3340.6124266998}, {0.00298033234, 4.10616996305, 6681.2248533996},
				{0.00289104742, 0.0, 0.0}, {0.00031365539, 4.4465105309, 10021.8372800994},
				{3.4841e-05, 4.7881254926, 13362.4497067992},
			},
			{
				{0.00217310991, 6.04472194776, 3340.6124266998}, {0.00020976948, 3.14159265359, 0.0},
				{0.00012834709, 1.60810667915, 6681.2248533996},
			},
		},
		{
			{
				{1.53033488271, 0.0, 0.0}, {0.1418495316, 3.47971283528, 3340.6124266998},
				{0.00660776362, 3.81783443019, 6681.2248533996}, {0.00046179117, 4.15595316782, 10021.8372800994},
				{8.109733e-05, 5.55958416318, 2810.9214616052}, {7.485318e-05, 1.77239078402, 5621.8429232104},
				{5.523191e-05, 1.3643630377, 2281.2304965106}, {3.82516e-05, 4.49407183687, 13362.4497067992},
				{2.306537e-05, 0.09081579001, 2544.3144198834}, {1.999396e-05, 5.36059617709, 3337.0893083508},
				{2.484394e-05, 4.9254563992, 2942.4634232916}, {1.960195e-05, 4.74249437639, 3344.1355450488},
				{1.167119e-05, 2.11260868341, 5092.1519581158}, {1.102816e-05, 5.00908403998, 398.1490034082},
				{8.99066e-06, 4.40791133207, 529.6909650946}, {9.92252e-06, 5.83861961952, 6151.533888305},
				{8.07354e-06, 2.10217065501, 1059.3819301892}, {7.97915e-06, 3.44839203899, 796.2980068164},
				{7.40975e-06, 1.49906336885, 2146.1654164752},
			},
			{
				{0.01107433345, 2.03250524857, 3340.6124266998}, {0.00103175887, 2.37071847807, 6681.2248533996},
				{0.000128772, 0.0, 0.0}, {0.0001081588, 2.70888095665, 10021.8372800994},
			},
			{
				{0.00044242249, 0.47930604954, 3340.6124266998}, {8.138042e-05, 0.86998389204, 6681.2248533996},
			},
		},
	},
	// Jupiter
	{
		{
			{
				{0.59954691494, 0.0, 0.0}, {0.09695898719, 5.06191793158, 529.6909650946},
				{0.00573610142, 1.44406205629, 7.1135470008}, {0.00306389205, 5.41734730184, 1059.3819301892},
				{0.00097178296, 4.14264726552, 632.7837393132}, {0.00072903078, 3.64042916389, 522.5774180938},
				{0.00064263975, 3.41145165351, 103.0927742186}, {0.00039806064, 2.29376740788, 419.4846438752},
				{0.00038857767, 1.27231755835, 316.3918696566}, {0.00027964629, 1.7845459182, 536.8045120954},
				{0.0001358973, 5.7748104079, 1589.0728952838}, {8.246349e-05, 3.5822792584, 206.1855484372},
				{8.768704e-05, 3.63000308199, 949.1756089698}, {7.368042e-05, 5.0810119427, 735.8765135318},
				{6.26315e-05, 0.02497628807, 213.299095438}, {6.114062e-05, 4.51319998626, 1162.4747044078},
				{4.905396e-05, 1.32084470588, 110.2063212194}, {5.305285e-05, 1.30671216791, 14.2270940016},
				{5.305441e-05, 4.18625634012, 1052.2683831884}, {4.647248e-05, 4.69958103684, 3.9321532631},
				{3.045023e-05, 4.31676431084, 426.598190876}, {2.609999e-05, 1.56667394063, 846.0828347512},
				{2.028191e-05, 1.06376530715, 3.1813937377}, {1.764763e-05, 2.14148655117, 1066.49547719},
				{1.722972e-05, 3.88036268267, 1265.5674786264}, {1.920945e-05, 0.97168196472, 639.897286314},
				{1.633223e-05, 3.58201833555, 515.463871093}, {1.431999e-05, 4.29685556046, 625.6701923124},
				{9.73272e-06, 4.09764549134, 95.9792272178},
			},
			{
				{529.69096508814, 0.0, 0.0}, {0.00489503243, 4.2208293947, 529.6909650946},
				{0.00228917222, 6.02646855621, 7.1135470008}, {0.00030099479, 4.54540782858, 1059.3819301892},
				{0.0002072092, 5.45943156902, 522.5774180938}, {0.00012103653, 0.16994816098, 536.8045120954},
				{6.067987e-05, 4.42422292017, 103.0927742186}, {5.433968e-05, 3.98480737746, 419.4846438752},
				{4.237744e-05, 5.89008707199, 14.2270940016},
			},
			{
				{0.00047233601, 4.32148536482, 7.1135470008}, {0.00030649436, 2.929777887, 529.6909650946},
				{0.00014837605, 3.14159265359, 0.0},
			},
		},
		{
			{
				{0.02268615702, 3.55852606721, 529.6909650946}, {0.00109971634, 3.90809347197, 1059.3819301892},
				{0.00110090358, 0.0, 0.0}, {8.101428e-05, 3.60509572885, 522.5774180938},
				{6.043996e-05, 4.25883108339, 1589.0728952838}, {6.437782e-05, 0.30627119215, 536.8045120954},
			},
			{
				{0.00078203446, 1.52377859742, 529.6909650946},
			},
		},
		{
			{
				{5.20887429326, 0.0, 0.0}, {0.25209327119, 3.49108639871, 529.6909650946},
				{0.00610599976, 3.84115365948, 1059.3819301892}, {0.00282029458, 2.57419881293, 632.7837393132},
				{0.00187647346, 2.07590383214, 522.5774180938}, {0.00086792905, 0.71001145545, 419.4846438752},
				{0.00072062974, 0.21465724607, 536.8045120954}, {0.00065517248, 5.9799588479, 316.3918696566},
				{0.00029134542, 1.67759379655, 103.0927742186}, {0.00030135335, 2.16132003734, 949.1756089698},
				{0.00023453271, 3.54023522184, 735.8765135318}, {0.00022283743, 4.19362594399, 1589.0728952838},
				{0.00023947298, 0.2745803748, 7.1135470008}, {0.00013032614, 2.96042965363, 1162.4747044078},
				{9.70336e-05, 1.90669633585, 206.1855484372}, {0.00012749023, 2.71550286592, 1052.2683831884},
			},
			{
				{0.0127180152, 2.64937512894, 529.6909650946}, {0.00061661816, 3.00076460387, 1059.3819301892},
				{0.00053443713, 3.89717383175, 522.5774180938}, {0.00031185171, 4.88276958012, 536.8045120954},
				{0.00041390269, 0.0, 0.0},
			},
		},
	},
	// Saturn
	{
		{
			{
				{0.87401354025, 0.0, 0.0}, {0.11107659762, 3.96205090159, 213.299095438},
				{0.01414150957, 4.58581516874, 7.1135470008}, {0.00398379389, 0.52112032699, 206.1855484372},
				{0.00350769243, 3.30329907896, 426.598190876}, {0.00206816305, 0.24658372002, 103.0927742186},
				{0.000792713, 3.84007056878, 220.4126424388}, {0.00023990355, 4.66976924553, 110.2063212194},
				{0.00016573588, 0.43719228296, 419.4846438752}, {0.00014906995, 5.76903183869, 316.3918696566},
				{0.0001582029, 0.93809155235, 632.7837393132}, {0.00014609559, 1.56518472, 3.9321532631},
				{0.00013160301, 4.44891291899, 14.2270940016}, {0.00015053543, 2.71669915667, 639.897286314},
				{0.00013005299, 5.98119023644, 11.0457002639}, {0.00010725067, 3.12939523827, 202.2533951741},
				{5.863206e-05, 0.23656938524, 529.6909650946}, {5.227757e-05, 4.20783365759, 3.1813937377},
				{6.126317e-05, 1.76328667907, 277.0349937414}, {5.019687e-05, 3.17787728405, 433.7117378768},
				{4.59255e-05, 0.61977744975, 199.0720014364}, {4.005867e-05, 2.24479718502, 63.7358983034},
				{2.953796e-05, 0.98280366998, 95.9792272178}, {3.87367e-05, 3.22283226966, 138.5174968707},
				{2.461186e-05, 2.03163875071, 735.8765135318}, {3.269484e-05, 0.77492638211, 949.1756089698},
				{1.758145e-05, 3.2658010994, 522.5774180938}, {1.640172e-05, 5.5050445305, 846.0828347512},
				{1.391327e-05, 4.02333150505, 323.5054166574}, {1.580648e-05, 4.37265307169, 309.2783226558},
				{1.123498e-05, 2.83726798446, 415.5524906121}, {1.017275e-05, 3.71700135395, 227.5261894396},
				{8.48642e-06, 3.1915017083, 209.3669421749},
			},
			{
				{213.2990952169, 0.0, 0.0}, {0.01297370862, 1.82834923978, 213.299095438},
				{0.00564345393, 2.88499717272, 7.1135470008}, {0.00093734369, 1.06311793502, 426.598190876},
				{0.00107674962, 2.27769131009, 206.1855484372}, {0.00040244455, 2.04108104671, 220.4126424388},
				{0.00019941774, 1.2795439047, 103.0927742186}, {0.00010511678, 2.7488034213, 14.2270940016},
				{6.416106e-05, 0.38238295041, 639.897286314}, {4.848994e-05, 2.43037610229, 419.4846438752},
				{4.056892e-05, 2.92133209468, 110.2063212194}, {3.768635e-05, 3.6496533078, 3.9321532631},
			},
			{
				{0.0011644133, 1.17988132879, 7.1135470008}, {0.00091841837, 0.0732519584, 213.299095438},
				{0.00036661728, 0.0, 0.0}, {0.00015274496, 4.06493179167, 206.1855484372},
			},
		},
		{
			{
				{0.04330678039, 3.60284428399, 213.299095438}, {0.00240348302, 2.85238489373, 426.598190876},
				{0.00084745939, 0.0, 0.0}, {0.00030863357, 3.48441504555, 220.4126424388},
				{0.00034116062, 0.57297307557, 206.1855484372}, {0.0001473407, 2.11846596715, 639.897286314},
				{9.916667e-05, 5.79003188904, 419.4846438752}, {6.993564e-05, 4.7360468972, 7.1135470008},
				{4.807588e-05, 5.43305312061, 316.3918696566},
			},
			{
				{0.00198927992, 4.93901017903, 213.299095438}, {0.00036947916, 3.14159265359, 0.0},
				{0.00017966989, 0.5197943111, 426.598190876},
			},
		},
		{
			{
				{9.55758135486, 0.0, 0.0}, {0.52921382865, 2.39226219573, 213.299095438},
				{0.01873679867, 5.2354960466, 206.1855484372}, {0.01464663929, 1.64763042902, 426.598190876},
				{0.00821891141, 5.93520042303, 316.3918696566}, {0.00547506923, 5.0153261898, 103.0927742186},
				{0.0037168465, 2.27114821115, 220.4126424388}, {0.00361778765, 3.13904301847, 7.1135470008},
				{0.00140617506, 5.70406606781, 632.7837393132}, {0.00108974848, 3.29313390175, 110.2063212194},
				{0.00069006962, 5.94099540992, 419.4846438752}, {0.00061053367, 0.94037691801, 639.897286314},
				{0.00048913294, 1.55733638681, 202.2533951741}, {0.00034143772, 0.19519102597, 277.0349937414},
				{0.00032401773, 5.47084567016, 949.1756089698}, {0.00020936596, 0.46349251129, 735.8765135318},
			},
			{
				{0.0618298134, 0.2584351148, 213.299095438}, {0.00506577242, 0.71114625261, 206.1855484372},
				{0.00341394029, 5.79635741658, 426.598190876}, {0.00188491195, 0.47215589652, 220.4126424388},
				{0.00186261486, 3.14159265359, 0.0}, {0.00143891146, 1.40744822888, 7.1135470008},
			},
			{
				{0.00436902572, 4.78671677509, 213.299095438},
			},
		},
	},
	// Uranus
	{
		{
			{
				{5.48129294297, 0.0, 0.0}, {0.09260408234, 0.89106421507, 74.7815985673},
				{0.01504247898, 3.6271926092, 1.4844727083}, {0.00365981674, 1.89962179044, 73.297125859},
				{0.00272328168, 3.35823706307, 149.5631971346}, {0.00070328461, 5.39254450063, 63.7358983034},
				{0.00068892678, 6.09292483287, 76.2660712756}, {0.00061998615, 2.26952066061, 2.9689454166},
				{0.00061950719, 2.85098872691, 11.0457002639}, {0.0002646877, 3.14152083966, 71.8126531507},
				{0.00025710476, 6.11379840493, 454.9093665273}, {0.0002107885, 4.36059339067, 148.0787244263},
				{0.00017818647, 1.74436930289, 36.6485629295}, {0.00014613507, 4.73732166022, 3.9321532631},
				{0.00011162509, 5.8268179635, 224.3447957019}, {0.0001099791, 0.48865004018, 138.5174968707},
				{9.527478e-05, 2.95516862826, 35.1640902212}, {7.545601e-05, 5.236265824, 109.9456887885},
				{4.220241e-05, 3.23328220918, 70.8494453042}, {4.0519e-05, 2.277550173, 151.0476698429},
				{3.354596e-05, 1.0654900738, 4.4534181249}, {2.926718e-05, 4.62903718891, 9.5612275556},
				{3.49034e-05, 5.48306144511, 146.594251718}, {3.144069e-05, 4.75199570434, 77.7505439839},
				{2.922333e-05, 5.35235361027, 85.8272988312}, {2.272788e-05, 4.36600400036, 70.3281804424},
				{2.051219e-05, 1.51773566586, 0.1118745846}, {2.148602e-05, 0.60745949945, 38.1330356378},
				{1.991643e-05, 4.92437588682, 277.0349937414}, {1.376226e-05, 2.04283539351, 65.2203710117},
				{1.666902e-05, 3.62744066769, 380.12776796}, {1.284107e-05, 3.11347961505, 202.2533951741},
				{1.150429e-05, 0.93343589092, 3.1813937377}, {1.533221e-05, 2.58594681212, 52.6901980395},
				{1.281604e-05, 0.54271272721, 222.8603229936}, {1.372139e-05, 4.19641530878, 111.4301614968},
				{1.221029e-05, 0.1990065003, 108.4612160802}, {9.46181e-06, 1.19253165736, 127.4717966068},
				{1.150989e-05, 4.17898916639, 33.6796175129},
			},
			{
				{74.7815986091, 0.0, 0.0}, {0.00154332863, 5.24158770553, 74.7815985673},
				{0.00024456474, 1.71260334156, 1.4844727083}, {9.258442e-05, 0.4282973235, 11.0457002639},
				{8.265977e-05, 1.50218091379, 63.7358983034}, {9.15016e-05, 1.41213765216, 149.5631971346},
			},
		},
		{
			{
				{0.01346277648, 2.61877810547, 74.7815985673}, {0.000623414, 5.08111189648, 149.5631971346},
				{0.00061601196, 3.14159265359, 0.0}, {9.963722e-05, 1.61603805646, 76.2660712756},
				{9.92616e-05, 0.57630380333, 73.297125859},
			},
			{
				{0.00034101978, 0.01321929936, 74.7815985673},
			},
		},
		{
			{
				{19.21264847206, 0.0, 0.0}, {0.88784984413, 5.60377527014, 74.7815985673},
				{0.03440836062, 0.32836099706, 73.297125859}, {0.0205565386, 1.7829515933, 149.5631971346},
				{0.0064932241, 4.52247285911, 76.2660712756}, {0.00602247865, 3.86003823674, 63.7358983034},
				{0.00496404167, 1.40139935333, 454.9093665273}, {0.00338525369, 1.58002770318, 138.5174968707},
				{0.00243509114, 1.57086606044, 71.8126531507}, {0.00190522303, 1.99809394714, 1.4844727083},
				{0.00161858838, 2.79137786799, 148.0787244263}, {0.00143706183, 1.38368544947, 11.0457002639},
				{0.00093192405, 0.17437220467, 36.6485629295}, {0.00071424548, 4.24509236074, 224.3447957019},
				{0.00089806014, 3.66105364565, 109.9456887885}, {0.00039009723, 1.66971401684, 70.8494453042},
				{0.00046677296, 1.39976401694, 35.1640902212}, {0.00039025624, 3.36234773834, 277.0349937414},
				{0.00036755274, 3.88649278513, 146.594251718}, {0.00030348723, 0.70100838798, 151.0476698429},
				{0.00029156413, 3.180563367, 77.7505439839},
			},
			{
				{0.01479896629, 3.67205697578, 74.7815985673},
			},
		},
	},
	// Neptune
	{
		{
			{
				{5.31188633046, 0.0, 0.0}, {0.0179847553, 2.9010127389, 38.1330356378},
				{0.01019727652, 0.48580922867, 1.4844727083}, {0.00124531845, 4.83008090676, 36.6485629295},
				{0.00042064466, 5.41054993053, 2.9689454166}, {0.00037714584, 6.09221808686, 35.1640902212},
				{0.00033784738, 1.24488874087, 76.2660712756}, {0.00016482741, 7.727998e-05, 491.5579294568},
				{9.198584e-05, 4.93747051954, 39.6175083461}, {8.99425e-05, 0.27462171806, 175.1660598002},
			},
			{
				{38.13303563957, 0.0, 0.0}, {0.00016604172, 4.86323329249, 1.4844727083},
				{0.00015744045, 2.27887427527, 38.1330356378},
			},
		},
		{
			{
				{0.03088622933, 1.44104372644, 38.1330356378}, {0.00027780087, 5.91271884599, 76.2660712756},
				{0.00027623609, 0.0, 0.0}, {0.00015355489, 2.52123799551, 36.6485629295},
				{0.00015448133, 3.50877079215, 39.6175083461},
			},
		},
		{
			{
				{30.07013205828, 0.0, 0.0}, {0.27062259632, 1.32999459377, 38.1330356378},
				{0.01691764014, 3.25186135653, 36.6485629295}, {0.00807830553, 5.18592878704, 1.4844727083},
				{0.0053776051, 4.52113935896, 35.1640902212}, {0.00495725141, 1.5710564165, 491.5579294568},
				{0.00274571975, 1.84552258866, 175.1660598002},
			},
		},
	},
}
