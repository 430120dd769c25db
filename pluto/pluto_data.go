package pluto

// plutoSegment holds Chebyshev polynomial coefficients for Pluto's
// heliocentric ecliptic position (AU, J2000 mean ecliptic) valid over
// [startJD, endJD]. Each segment is a degree-10 fit (11 coefficients per
// axis) sampled from the same Keplerian element set this package's
// short-range refinement (shortRangeRefine in pluto.go) starts from, at Chebyshev nodes, the
// same discretization a numerically integrated ephemeris would be sliced
// into for fast repeated evaluation.
type plutoSegment struct {
	startJD, endJD float64
	x, y, z        [11]float64
}

var plutoSegments = []plutoSegment{
	{startJD: 2433282.50, endJD: 2442413.75,
		x: [11]float64{-2.9155360345e+01, -1.4217277293e+00, 1.2657200089e+00, 6.2856544110e-02, -3.1590424929e-03, -6.7033418602e-04, -3.8946618146e-05, 2.0015277371e-06, 5.7214105389e-07, 4.0175883953e-08, -1.6090801419e-09},
		y: [11]float64{1.0602080345e+01, -1.4193201139e+01, -4.3340036983e-01, 8.1770433724e-02, 7.5509753678e-03, 1.0855927059e-04, -4.8731128143e-05, -5.7950744932e-06, -1.3498410018e-07, 4.3666287556e-08, 6.1431204366e-09},
		z: [11]float64{7.2978212755e+00, 1.9305930327e+00, -3.1974838738e-01, -2.6936216394e-02, 1.0566850363e-04, 1.8229547826e-04, 1.6482126060e-05, 4.1262452525e-08, -1.5105809508e-07, -1.6295493157e-08, -1.9204771107e-10}},
	{startJD: 2442413.75, endJD: 2451545.00,
		x: [11]float64{-2.0814544808e+01, 9.7721592941e+00, 1.2578634326e+00, -8.8185617038e-02, -1.1146191030e-02, 7.0674310439e-04, 1.2551313188e-04, -6.9734140392e-06, -1.6841687521e-06, 7.4568704827e-08, 2.5089564204e-08},
		y: [11]float64{-1.6973687254e+01, -1.2135572051e+01, 1.0319261901e+00, 1.2253455176e-01, -7.6772308003e-03, -1.2020917329e-03, 6.8373226743e-05, 1.4993058699e-05, -6.9991526910e-07, -2.1117578809e-07, 7.4087057903e-09},
		z: [11]float64{7.8369135254e+00, -1.5277593995e+00, -4.7432270722e-01, 1.2394624336e-02, 4.0461388729e-03, -7.5777686829e-05, -4.3626301510e-05, 4.1244245465e-07, 5.6210009568e-07, 1.0324759229e-09, -8.0506855324e-09}},
	{startJD: 2451545.00, endJD: 2460676.25,
		x: [11]float64{4.3424854784e+00, 1.4154249505e+01, -1.7968080306e-01, -1.0166518846e-01, 7.0178245781e-03, 1.8781329672e-04, -7.5908235854e-05, 5.0519920457e-06, 3.0979861327e-07, -8.4489385347e-08, 4.8109813103e-09},
		y: [11]float64{-3.0423631246e+01, -9.7778385922e-01, 1.4412041761e+00, -4.8151145220e-02, -6.2713371359e-03, 8.2179756050e-04, -1.7247129458e-05, -6.2726596358e-06, 7.5940352544e-07, -4.1598695397e-09, -8.2334414034e-09},
		z: [11]float64{1.9995381522e+00, -3.9896461532e+00, -1.0227411744e-01, 3.4564327471e-02, -1.3588104881e-03, -1.4229715051e-04, 2.3804424280e-05, -7.8998445296e-07, -1.7090118064e-07, 2.4885609129e-08, -5.1039283910e-10}},
	{startJD: 2460676.25, endJD: 2469807.50,
		x: [11]float64{2.8627506881e+01, 9.6278204931e+00, -7.9233240359e-01, -1.1855608291e-02, 3.0630616197e-03, -2.4103328204e-04, 1.0584609949e-05, 1.7496688026e-07, -8.3885972915e-08, 8.8361166465e-09, -5.1137712247e-10},
		y: [11]float64{-2.3236875907e+01, 7.5015094827e+00, 6.6085294658e-01, -6.1888954808e-02, 1.8798353340e-03, 5.3738382144e-05, -1.5504045652e-05, 1.4210631650e-06, -7.0613682820e-08, -7.1771017412e-10, 5.5434283426e-10},
		z: [11]float64{-5.7943008675e+00, -3.5877228197e+00, 1.5848908675e-01, 1.0054596528e-02, -1.0873364514e-03, 6.3971857766e-05, -1.4022120252e-06, -2.0272772862e-07, 3.1824340294e-08, -2.4792003803e-09, 8.8589973741e-11}},
	{startJD: 2469807.50, endJD: 2478938.75,
		x: [11]float64{4.1494406594e+01, 3.2720332976e+00, -7.5770588917e-01, 1.1181234260e-02, 4.2981974109e-04, -5.1791267128e-05, 4.0610902833e-06, -2.2076993066e-07, 8.8813404308e-09, -1.0326963527e-10, -2.2789043380e-11},
		y: [11]float64{-4.9360622625e+00, 1.0329311185e+01, 9.5510597768e-02, -3.4018750621e-02, 1.3089268575e-03, -5.1582686287e-05, 6.8210472939e-07, 9.2391581254e-08, -1.1963636546e-08, 9.1855622098e-10, -5.2260175985e-11},
		z: [11]float64{-1.1474433169e+01, -2.0516338739e+00, 2.0898716237e-01, 4.0650628583e-04, -2.6449878898e-04, 2.0503479934e-05, -1.2477841403e-06, 5.3971775897e-08, -1.2884591979e-09, -6.8451991550e-11, 1.2185767547e-11}},
	{startJD: 2478938.75, endJD: 2488070.00,
		x: [11]float64{4.2448901786e+01, -2.1886602064e+00, -6.0380767108e-01, 1.3469477758e-02, 8.9727616845e-06, -2.3878038010e-06, 8.6460948526e-07, -4.2711741860e-08, 2.6150220575e-09, -1.0822760869e-10, 4.2235306162e-12},
		y: [11]float64{1.5398575186e+01, 9.7461151188e+00, -2.1706388500e-01, -2.0057796991e-02, 5.1649923660e-04, -2.7509686786e-05, 8.6764941623e-07, -2.1476529403e-08, 5.4461162852e-11, 5.5999568619e-11, -4.5945267792e-12},
		z: [11]float64{-1.3925922366e+01, -4.0939896789e-01, 1.9791608757e-01, -1.7506762358e-03, -5.7936499057e-05, 3.6351684549e-06, -3.4300524732e-07, 1.4654096764e-08, -7.6227121585e-10, 2.5310662657e-11, -7.3008266099e-13}},
	{startJD: 2488070.00, endJD: 2497201.25,
		x: [11]float64{3.3756008054e+01, -6.3679084651e+00, -4.4001881051e-01, 1.4085508358e-02, 1.0897649475e-04, 1.0815613069e-05, 4.3721246486e-07, 2.9052916840e-09, 7.7650629361e-10, -1.5162659007e-11, 9.6746852953e-13},
		y: [11]float64{3.2467753662e+01, 7.1519090442e+00, -4.2318040825e-01, -1.5249430603e-02, 1.3173352914e-04, -1.2630753761e-05, 4.4830749085e-07, -5.5050189861e-09, 7.2649603505e-10, 1.2993888793e-11, 7.4849217733e-13},
		z: [11]float64{-1.3236908002e+01, 1.0772809005e+00, 1.7257793060e-01, -2.4445048375e-03, -4.5689181687e-05, -1.7774210725e-06, -1.7448030382e-07, -2.5060842290e-10, -3.0234287801e-10, 2.9982481144e-12, -3.5817813362e-13}},
	{startJD: 2497201.25, endJD: 2506332.50,
		x: [11]float64{1.8069579310e+01, -9.1618439290e+00, -2.5135943932e-01, 1.8203086351e-02, 4.4975114628e-04, 2.4733001294e-05, 8.0929038339e-07, 2.1562818763e-08, 2.9310889069e-10, -3.5918258267e-11, -3.1640145049e-12},
		y: [11]float64{4.2821650877e+01, 3.0548836172e+00, -5.9998138781e-01, -1.4574726503e-02, -9.2536563960e-06, -3.4422156858e-07, 7.5744515209e-07, 3.5662758080e-08, 2.3354687073e-09, 9.7589169069e-11, 4.0550996904e-12},
		z: [11]float64{-9.8061518149e+00, 2.3238710625e+00, 1.3689494217e-01, -3.7089969253e-03, -1.2919191123e-04, -7.1184735995e-06, -3.1514024101e-07, -1.0049483508e-08, -3.3442969606e-10, -3.6092341237e-14, 4.8361314953e-13}},
}
