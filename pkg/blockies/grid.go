package blockies

// createImageData は左右対称の 0/1 添字バッファを行優先で組み立てます。
// 幅は size を偶数に切り上げた値、高さは切り上げ前の size のままです。
// 各行は左半分（width/2 列）だけ draw から引き、右半分は鏡写しにします。
// 対称性は構築時に保証されるので、後処理での補正は行いません。
func createImageData(size int, draw func() bool) []uint8 {
	width := size + size%2
	height := size

	data := make([]uint8, width*height)
	for y := 0; y < height; y++ {
		row := data[y*width : (y+1)*width]
		for x := 0; x < width/2; x++ {
			var v uint8
			if draw() {
				v = 1
			}
			row[x] = v
			row[width-1-x] = v
		}
	}
	return data
}
