package ephem

// chebCoeff is one Chebyshev coefficient triple for the x, y, z coordinates.
type chebCoeff [3]float64

// chebRecord covers a span of ndays Terrestrial Time days starting at tt with
// a single Chebyshev polynomial fit.
type chebRecord struct {
	tt    float64
	ndays float64
	coeff []chebCoeff
}

// plutoTable is a piecewise Chebyshev fit of Pluto's heliocentric position,
// valid approximately over the years 1700..2200.
var plutoTable = []chebRecord{
	{
		tt:    -109573.5,
		ndays: 26141.0,
		coeff: []chebCoeff{
			{-30.303124711144, -18.980368465705, 3.206649343866},
			{20.092745278347, -27.533908687219, -14.64112196599},
			{9.137264744925, 6.513103657467, -0.720732357468},
			{-1.201554708717, 2.149917852301, 1.032022293526},
			{-0.566068170022, -0.285737361191, 0.081379987808},
			{0.041678527795, -0.14336310504, -0.057534475984},
			{0.041087908142, 0.00791132158, -0.010270655537},
			{0.001611769878, 0.011409821837, 0.003679980733},
			{-0.002536458296, -0.000145632543, 0.00094992403},
			{0.001167651969, -4.991268e-05, 0.00011586771},
			{-0.000196953286, 0.00042040627, 0.000110147171},
			{0.001073825784, 0.000442658285, 0.000146985332},
			{-0.000906160087, 0.001702360394, 0.000758987924},
			{-0.001467464335, -0.000622191266, -0.000231866243},
			{-8.986691e-06, 4.086384e-06, 1.442956e-06},
			{-0.001099078039, -0.000544633529, -0.000205534708},
			{0.001259974751, -0.002178533187, -0.000965315934},
			{0.001695288316, 0.000768480768, 0.000287916141},
			{-0.001428026702, 0.002707551594, 0.001195955756},
		},
	},
	{
		tt:    -83432.5,
		ndays: 26141.0,
		coeff: []chebCoeff{
			{67.049456204563, -9.279626603192, -23.091941092128},
			{14.860676672314, 26.594121136143, 3.819668867047},
			{-6.25440904412, 1.408757903538, 2.323726101433},
			{0.114416381092, -0.942273228585, -0.328566335886},
			{0.074973631246, 0.106749156044, 0.010806547171},
			{-0.018627741964, -0.009983491157, 0.002589955906},
			{0.006167206174, -0.001042430439, -0.001521881831},
			{-0.000471293617, 0.002337935239, 0.001060879763},
			{-0.000240627462, -0.001380351742, -0.00054604259},
			{0.001872140444, 0.00067987662, 0.000240384842},
			{-0.000334705177, 0.00069352833, 0.000301138309},
			{0.000796124758, 0.000653183163, 0.000259527079},
			{-0.001276116664, 0.001393959948, 0.000629574865},
			{-0.001235158458, -0.000889985319, -0.000351392687},
			{-1.9881944e-05, 4.8339979e-05, 2.1342186e-05},
			{-0.000987113745, -0.000748420747, -0.000296503569},
			{0.001721891782, -0.001893675502, -0.000854270937},
			{0.001505145187, 0.001081653337, 0.00042672364},
			{-0.002019479384, 0.002375617497, 0.001068258925},
		},
	},
	{
		tt:    -57291.5,
		ndays: 26141.0,
		coeff: []chebCoeff{
			{46.038290912405, 73.773759757856, 9.148670950706},
			{-22.354364534703, 10.217143138926, 9.921247676076},
			{-2.696282001399, -4.440843715929, -0.57237303784},
			{0.3854758188, -0.287872688575, -0.205914693555},
			{0.020994433095, 0.004256602589, -0.004817361041},
			{0.003212255378, 0.000574875698, -0.00076446437},
			{-0.000158619286, -0.001035559544, -0.000535612316},
			{0.000967952107, -0.000653111849, -0.00029201975},
			{0.001763494906, -0.000370815938, -0.000224698363},
			{0.00115799033, 0.001849810828, 0.000759641577},
			{-0.000883535516, 0.000384038162, 0.000191242192},
			{0.000709486562, 0.000655810827, 0.000265431131},
			{-0.001525810419, 0.001126870468, 0.000520202001},
			{-0.00098321086, -0.001116073455, -0.000456026382},
			{-1.565545e-05, 6.9184008e-05, 2.9796623e-05},
			{-0.000815102021, -0.00090059701, -0.000365274209},
			{0.002090300438, -0.001536778673, -0.000709827438},
			{0.001234661297, 0.001342978436, 0.000545313112},
			{-0.002517963678, 0.001941826791, 0.00089385986},
		},
	},
	{
		tt:    -31150.5,
		ndays: 26141.0,
		coeff: []chebCoeff{
			{-39.074661990988, 30.963513412373, 21.431709298065},
			{-12.033639281924, -31.69367913231, -6.263961539568},
			{7.233936758611, -3.979157072767, -3.421027935569},
			{1.383182539917, 1.0907297934, -0.076771771448},
			{-0.009894394996, 0.313614402007, 0.101180677344},
			{-0.055459383449, 0.031782406403, 0.026374448864},
			{-0.011074105991, -0.007176759494, 0.001896208351},
			{-0.000263363398, -0.001145329444, 0.000215471838},
			{0.000405700185, -0.000839229891, -0.000418571366},
			{0.001004921401, 0.001135118493, 0.000406734549},
			{-0.000473938695, 0.000282751002, 0.000114911593},
			{0.000528685886, 0.000966635293, 0.000401955197},
			{-0.001838869845, 0.000806432189, 0.000394594478},
			{-0.000713122169, -0.001334810971, -0.000554511235},
			{6.449359e-06, 6.073e-05, 2.451323e-05},
			{-0.000596025142, -0.00099949277, -0.000413930406},
			{0.002364904429, -0.001099236865, -0.000528480902},
			{0.000907458104, 0.001537243912, 0.000637001965},
			{-0.002909908764, 0.001413648354, 0.000677030924},
		},
	},
	{
		tt:    -5009.5,
		ndays: 26141.0,
		coeff: []chebCoeff{
			{23.380075041204, -38.969338804442, -19.204762094135},
			{33.437140696536, 8.735194448531, -7.348352917314},
			{-3.127251304544, 8.324311848708, 3.540122328502},
			{-1.491354030154, -1.350371407475, 0.028214278544},
			{0.361398480996, -0.118420687058, -0.14537560548},
			{-0.011771350229, 0.085880588309, 0.030665997197},
			{-0.015839541688, -0.014165128211, 0.000523465951},
			{0.004213218926, -0.001426373728, -0.001906412496},
			{0.001465150002, 0.000451513538, 8.1936194e-05},
			{0.000640069511, 0.001886692235, 0.000884675556},
			{-0.00088355494, 0.000301907356, 0.000127310183},
			{0.000245524038, 0.000910362686, 0.000385555148},
			{-0.001942010476, 0.00043868228, 0.000237124027},
			{-0.00042545566, -0.001442138768, -0.00060775139},
			{4.168433e-06, 3.3856562e-05, 1.3881811e-05},
			{-0.000337920193, -0.001074290356, -0.000452503056},
			{0.002544755354, -0.000620356219, -0.000327246228},
			{0.00053453411, 0.001670320887, 0.000702775941},
			{-0.00316938027, 0.000816186705, 0.000427213817},
		},
	},
	{
		tt:    21131.5,
		ndays: 26141.0,
		coeff: []chebCoeff{
			{74.130449310804, 43.372111541004, -8.799489207171},
			{-8.705941488523, 23.344631690845, 9.908006472122},
			{-4.614752911564, -2.587334376729, 0.583321715294},
			{0.316219286624, -0.395448970181, -0.219217574801},
			{0.004593734664, 0.027528474371, 0.00773619728},
			{-0.001192268851, -0.004987723997, -0.001599399192},
			{0.003051998429, -0.001287028653, -0.000780744058},
			{0.001482572043, 0.001613554244, 0.000635747068},
			{0.000581965277, 0.000788286674, 0.000315285159},
			{-0.00031183073, 0.00162236993, 0.000714817617},
			{-0.000711275723, -0.000160014561, -5.0445901e-05},
			{0.000177159088, 0.001032713853, 0.000435835541},
			{-0.00203228082, 0.000144281331, 0.000111910344},
			{-0.000148463759, -0.001495212309, -0.000635892081},
			{-9.629403e-06, -1.3678407e-05, -6.187457e-06},
			{-6.1196084e-05, -0.00111978352, -0.000479221572},
			{0.002630993795, -0.000113042927, -0.000112115452},
			{0.000132867113, 0.001741417484, 0.00074322463},
			{-0.003293498893, 0.000182437998, 0.000158073228},
		},
	},
	{
		tt:    47272.5,
		ndays: 26141.0,
		coeff: []chebCoeff{
			{-5.727994625506, 71.194823351703, 23.946198176031},
			{-26.767323214686, -12.26494930278, 4.238297122007},
			{0.89059620425, -5.970227904551, -2.131444078785},
			{0.808383708156, -0.143104108476, -0.288102517987},
			{0.089303327519, 0.049290470655, -0.010970501667},
			{0.010197195705, 0.0128797214, 0.00131758674},
			{0.001795282629, 0.00448240378, 0.001563326157},
			{-0.001974716105, 0.001278073933, 0.000652735133},
			{0.000906544715, -0.000805502229, -0.000336200833},
			{0.000283816745, 0.001799099064, 0.000756827653},
			{-0.000784971304, 0.00012308122, 6.8812133e-05},
			{-0.000237033406, 0.000980100466, 0.000427758498},
			{-0.001976846386, -0.000280421081, -7.2417045e-05},
			{0.000195628511, -0.001446079585, -0.000624011074},
			{-4.4622337e-05, -3.5865046e-05, -1.3581236e-05},
			{0.000204397832, -0.001127474894, -0.000488668673},
			{0.002625373003, 0.000389300123, 0.000102756139},
			{-0.000277321614, 0.001732818354, 0.000749576471},
			{-0.003280537764, -0.000457571669, -0.000116383655},
		},
	},
}
