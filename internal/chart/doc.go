// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

// Package chart turns a temperature variance dataset into a renderable
// description of the heat map.
//
// # Colour buckets
//
// Absolute temperatures (base temperature plus variance, rounded to three
// decimals) are split into a fixed number of buckets between the lowest and
// highest temperature of the dataset. With n buckets there are n-1
// thresholds, evenly spaced and rounded to three decimals:
//
//	threshold[i] = round3(tempMin + i*(tempMax-tempMin)/n)    i = 1 .. n-1
//
// Bucket k covers [threshold[k-1], threshold[k]); the first and the last
// bucket are open-ended. A dataset whose variances are all equal collapses
// every threshold onto the same value and all cells share one colour.
//
// # Grid
//
// Years run along a linear x scale over the plot area, months along a
// rounded 12-band y scale. Tiles are sized as if every year had exactly
// twelve observations:
//
//	tileWidth  = round(plotWidth / (observations / 12))
//	tileHeight = round(plotHeight / 12)
//
// Datasets with partial years are drawn with this assumption intact.
package chart
